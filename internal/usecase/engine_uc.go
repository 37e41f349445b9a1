// File: internal/usecase/engine_uc.go
package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"happybot/internal/domain/model"
	"happybot/internal/domain/ports/adapter"
	"happybot/internal/infra/metrics"
	"happybot/internal/lexicon"
)

// Compile-time check
var _ EngineUseCase = (*engineUC)(nil)

// EngineUseCase is the conversation dispatch loop for one session: it decides
// per turn whether the input is a game answer, a safety-sensitive utterance or
// an ordinary classified message, and emits exactly one reply path through the
// presenter. All methods are safe for concurrent use; the engine serializes
// every session mutation behind one mutex.
type EngineUseCase interface {
	// Submit handles one raw user turn. It returns false when the turn was
	// silently ignored (empty input or inside the debounce window).
	Submit(ctx context.Context, raw string) bool
	// StartRandomGame force-starts a mini-game, bypassing normal triggering.
	StartRandomGame(ctx context.Context)
	// Greet emits the startup welcome and schedules the delayed hint.
	Greet(ctx context.Context)
	// MaybeIdleRemark emits an unprompted message with the configured
	// probability. Skipped entirely while a game is active. Reports whether
	// a message was emitted.
	MaybeIdleRemark(ctx context.Context) bool
	// GameActive reports whether a mini-game is awaiting an answer.
	GameActive() bool
	// Snapshot returns a deep copy of the session state.
	Snapshot() model.SessionSnapshot
	// SetUsername updates the display username and persists it.
	SetUsername(ctx context.Context, name string) error
}

// Tuning carries the pacing knobs of the engine. Zero values are replaced by
// DefaultTuning at construction.
type Tuning struct {
	Debounce        time.Duration
	GamePromptDelay time.Duration
	HintDelay       time.Duration
	IdleChance      float64
	UnknownShare    float64 // share of unmatched turns answered from the unknown set
}

func DefaultTuning() Tuning {
	return Tuning{
		Debounce:        250 * time.Millisecond,
		GamePromptDelay: 600 * time.Millisecond,
		HintDelay:       1200 * time.Millisecond,
		IdleChance:      0.15,
		UnknownShare:    0.4,
	}
}

type engineUC struct {
	mu        sync.Mutex
	session   *model.Session
	presenter adapter.Presenter
	rand      adapter.RandomSource
	settings  SettingsUseCase
	tuning    Tuning
	log       *zerolog.Logger

	lastAccepted time.Time

	// now and after are injection points for deterministic tests.
	now   func() time.Time
	after func(d time.Duration, f func())
}

func NewEngineUseCase(sessionID, username string, presenter adapter.Presenter, rnd adapter.RandomSource, settings SettingsUseCase, tuning Tuning, logger *zerolog.Logger) *engineUC {
	if tuning.Debounce <= 0 {
		tuning.Debounce = DefaultTuning().Debounce
	}
	if tuning.GamePromptDelay <= 0 {
		tuning.GamePromptDelay = DefaultTuning().GamePromptDelay
	}
	if tuning.HintDelay <= 0 {
		tuning.HintDelay = DefaultTuning().HintDelay
	}
	if tuning.IdleChance <= 0 {
		tuning.IdleChance = DefaultTuning().IdleChance
	}
	if tuning.UnknownShare <= 0 {
		tuning.UnknownShare = DefaultTuning().UnknownShare
	}
	l := logger.With().Str("component", "Engine").Str("session_id", sessionID).Logger()
	return &engineUC{
		session:   model.NewSession(sessionID, username),
		presenter: presenter,
		rand:      rnd,
		settings:  settings,
		tuning:    tuning,
		log:       &l,
		now:       time.Now,
		after:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

func (e *engineUC) Submit(ctx context.Context, raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		metrics.IncTurn("empty")
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	if !e.lastAccepted.IsZero() && now.Sub(e.lastAccepted) < e.tuning.Debounce {
		metrics.IncTurn("debounced")
		return false
	}
	e.lastAccepted = now
	metrics.IncTurn("accepted")

	e.session.PushTurn(model.RoleUser, text, now)
	e.presenter.UserEcho(ctx, text, e.session.Username)

	norm := lexicon.Normalize(text)

	if e.session.ActiveGame != nil {
		if norm == "skip" || norm == "s" {
			game := e.session.ActiveGame.Def.ID
			e.clearGameLocked()
			e.sayLocked(ctx, "Game skipped.")
			metrics.IncGameResolved(string(game), "skipped")
			return true
		}
		e.handleGameAnswerLocked(ctx, norm)
		return true
	}

	// Safety check runs before classification so co-occurring keywords can
	// never shadow the de-escalation reply.
	if lexicon.IsThreat(norm) {
		metrics.IncCategory(string(model.CategoryThreats))
		e.sayLocked(ctx, lexicon.ThreatReply())
		return true
	}

	cat, matched := lexicon.Classify(norm)
	if !matched {
		if e.rand.Float64() < e.tuning.UnknownShare {
			metrics.IncCategory(string(model.CategoryUnknown))
			e.sayLocked(ctx, e.pickLocked(model.CategoryUnknown))
		} else {
			metrics.IncCategory(string(model.CategoryFallback))
			e.sayLocked(ctx, e.pickLocked(model.CategoryFallback))
		}
		return true
	}

	metrics.IncCategory(string(cat))
	switch cat {
	case model.CategoryBoredom:
		// Reply first, game prompt after a cosmetic pacing delay. The order
		// is the contract, the delay is not.
		e.sayLocked(ctx, e.pickLocked(cat))
		e.after(e.tuning.GamePromptDelay, func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if e.session.ActiveGame == nil {
				e.startRandomGameLocked(ctx)
			}
		})
	case model.CategoryJokes, model.CategoryYesNo:
		e.sayLocked(ctx, e.pickLocked(cat))
	case model.CategoryGreetings:
		// Greetings never touch LastEmotion. The asymmetry with the other
		// emotion categories is inherited behavior and part of the contract.
		e.sayLocked(ctx, e.pickLocked(cat))
	default:
		e.sayLocked(ctx, e.pickLocked(cat))
		e.session.LastEmotion = cat
	}
	return true
}

func (e *engineUC) StartRandomGame(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startRandomGameLocked(ctx)
}

func (e *engineUC) Greet(ctx context.Context) {
	e.mu.Lock()
	e.sayLocked(ctx, "Hi! I'm HappyBot 😄 How are you feeling today?")
	e.mu.Unlock()
	e.after(e.tuning.HintDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.sayLocked(ctx, "Say 'bored' to play a mini-game or 'joke' for a laugh!")
	})
}

func (e *engineUC) MaybeIdleRemark(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.ActiveGame != nil {
		return false
	}
	if e.rand.Float64() >= e.tuning.IdleChance {
		return false
	}
	remarks := lexicon.IdleRemarks()
	e.sayLocked(ctx, remarks[e.rand.Intn(len(remarks))])
	return true
}

func (e *engineUC) GameActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.ActiveGame != nil
}

func (e *engineUC) Snapshot() model.SessionSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Snapshot()
}

func (e *engineUC) SetUsername(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if err := e.settings.UpdateUsername(ctx, name); err != nil {
		return err
	}
	e.mu.Lock()
	e.session.Username = name
	e.mu.Unlock()
	return nil
}

// ---- internals (callers hold e.mu) ----

func (e *engineUC) sayLocked(ctx context.Context, text string) {
	e.session.PushTurn(model.RoleBot, text, e.now())
	e.presenter.BotMessage(ctx, text)
	metrics.IncBotMessage()
}

func (e *engineUC) pickLocked(cat model.Category) string {
	set := lexicon.Responses(cat)
	return set[e.rand.Intn(len(set))]
}

func (e *engineUC) startRandomGameLocked(ctx context.Context) {
	def := model.GameDefinitions[e.rand.Intn(len(model.GameDefinitions))]
	inst := &model.GameInstance{Def: def, Answer: def.Answer}
	if def.ID == model.GameNumberGuess {
		inst.Answer = strconv.Itoa(e.rand.Intn(10) + 1)
	}
	e.session.ActiveGame = inst
	metrics.IncGameStarted(string(def.ID))
	e.log.Debug().Str("game", string(def.ID)).Msg("game started")
	e.sayLocked(ctx, fmt.Sprintf("🎮 Mini-Game: %s — %s", def.Name, def.Prompt))
}

func (e *engineUC) clearGameLocked() {
	e.session.ActiveGame = nil
}

func (e *engineUC) handleGameAnswerLocked(ctx context.Context, norm string) {
	game := e.session.ActiveGame

	if game.Def.ID == model.GameRockPaperScissors {
		valid := false
		for _, c := range model.RPSChoices {
			if norm == c {
				valid = true
				break
			}
		}
		if !valid {
			e.sayLocked(ctx, "Please type 'rock', 'paper' or 'scissors'.")
			return
		}
		botChoice := model.RPSChoices[e.rand.Intn(len(model.RPSChoices))]
		switch {
		case botChoice == norm:
			e.sayLocked(ctx, fmt.Sprintf("I chose %s — it's a tie!", botChoice))
			metrics.IncGameResolved(string(game.Def.ID), "tie")
		case model.RPSBeats(norm, botChoice):
			e.sayLocked(ctx, fmt.Sprintf("I chose %s — you win! 🎉", botChoice))
			metrics.IncGameResolved(string(game.Def.ID), "win")
		default:
			e.sayLocked(ctx, fmt.Sprintf("I chose %s — I win 😎", botChoice))
			metrics.IncGameResolved(string(game.Def.ID), "lose")
		}
		e.clearGameLocked()
		return
	}

	if game.Answer != "" && strings.Contains(norm, game.Answer) {
		e.sayLocked(ctx, "🎉 Correct! You got it right!")
		metrics.IncGameResolved(string(game.Def.ID), "correct")
		e.clearGameLocked()
		return
	}
	// No attempt limit: retries are unbounded until a correct answer or skip.
	e.sayLocked(ctx, "🤔 Not yet — try again or type 'skip'.")
}
