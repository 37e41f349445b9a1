package telegram

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"happybot/internal/application"
	"happybot/internal/config"
	"happybot/internal/domain/ports/adapter"
	"happybot/internal/domain/ports/repository"
	"happybot/internal/infra/metrics"
	"happybot/internal/usecase"
)

var _ adapter.TelegramBotAdapter = (*RealBotAdapter)(nil)

// telegramPresenter delivers bot replies straight to a chat. Telegram already
// renders the user's own message, so UserEcho is a no-op.
type telegramPresenter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func (p *telegramPresenter) BotMessage(ctx context.Context, text string) {
	select {
	case <-ctx.Done():
		return
	default:
	}
	_, _ = p.bot.Send(tgbotapi.NewMessage(p.chatID, text))
}

func (p *telegramPresenter) UserEcho(ctx context.Context, text, username string) {}

// RealBotAdapter polls Telegram updates and runs one conversation engine per
// chat. It is the second frontend next to the web widget.
type RealBotAdapter struct {
	bot          *tgbotapi.BotAPI
	cfg          *config.BotConfig
	settingsRepo repository.SettingsRepository
	rnd          adapter.RandomSource
	tuning       usecase.Tuning
	log          *zerolog.Logger

	mu      sync.Mutex
	facades map[int64]*application.WidgetFacade

	updateWorkers int
	cancelPolling context.CancelFunc
}

func NewRealBotAdapter(cfg *config.BotConfig, settingsRepo repository.SettingsRepository, rnd adapter.RandomSource, tuning usecase.Tuning, logger *zerolog.Logger) (*RealBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if settingsRepo == nil {
		return nil, errors.New("settings repo is nil")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 5
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	l := logger.With().Str("component", "TelegramBot").Logger()
	return &RealBotAdapter{
		bot:           bot,
		cfg:           cfg,
		settingsRepo:  settingsRepo,
		rnd:           rnd,
		tuning:        tuning,
		log:           &l,
		facades:       make(map[int64]*application.WidgetFacade),
		updateWorkers: workers,
	}, nil
}

func (r *RealBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := r.handleUpdate(ctx, up); err != nil {
						r.log.Error().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (r *RealBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

// ForEachEngine visits every live chat engine; wired to the idle-chatter
// worker the same way the web hub is.
func (r *RealBotAdapter) ForEachEngine(visit func(engine usecase.EngineUseCase)) {
	r.mu.Lock()
	engines := make([]usecase.EngineUseCase, 0, len(r.facades))
	for _, f := range r.facades {
		engines = append(engines, f.Engine)
	}
	r.mu.Unlock()
	for _, e := range engines {
		visit(e)
	}
}

// facadeFor returns the engine for a chat, building it on first contact.
func (r *RealBotAdapter) facadeFor(ctx context.Context, chatID int64, tgUsername string) (*application.WidgetFacade, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.facades[chatID]; ok {
		return f, false
	}

	ownerID := "tg:" + strconv.FormatInt(chatID, 10)
	settingsUC := usecase.NewSettingsUseCase(ctx, r.settingsRepo, ownerID, r.log)
	username := settingsUC.Current(ctx).Username
	if username == repository.DefaultSettings().Username && tgUsername != "" {
		username = tgUsername
	}

	presenter := &telegramPresenter{bot: r.bot, chatID: chatID}
	engine := usecase.NewEngineUseCase(ownerID, username, presenter, r.rnd, settingsUC, r.tuning, r.log)

	f := application.NewWidgetFacade(engine, settingsUC)
	r.facades[chatID] = f
	metrics.IncSessionStarted("telegram")
	r.log.Info().Int64("chat_id", chatID).Msg("chat engine created")
	return f, true
}

func (r *RealBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil || update.Message.From == nil {
		return nil
	}
	msg := update.Message
	chatID := msg.Chat.ID

	facade, fresh := r.facadeFor(ctx, chatID, msg.From.UserName)

	fields := strings.Fields(msg.Text)
	command := ""
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		command = fields[0]
	}

	switch command {
	case "/start":
		facade.Engine.Greet(ctx)
		return nil

	case "/game":
		facade.StartRandomGame(ctx)
		return nil

	case "/name":
		if len(fields) < 2 {
			return r.send(chatID, "Usage: /name <your name>")
		}
		name := strings.Join(fields[1:], " ")
		if err := facade.SetUsername(ctx, name); err != nil {
			r.log.Warn().Err(err).Int64("chat_id", chatID).Msg("username not persisted")
		}
		return r.send(chatID, "Nice to meet you, "+name+"!")

	case "/help":
		return r.send(chatID, "Commands:\n/start - say hi\n/game - start a mini-game\n/name <name> - set your name\nAnything else: just chat with me!")

	default:
		if fresh {
			// First contact without /start still deserves the welcome.
			facade.Engine.Greet(ctx)
		}
		if msg.Text != "" {
			facade.SubmitText(ctx, msg.Text)
		}
		return nil
	}
}

func (r *RealBotAdapter) send(chatID int64, text string) error {
	_, err := r.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
