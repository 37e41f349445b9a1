// File: internal/infra/metrics/metrics.go
package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happybot_turns_total",
			Help: "User turns by outcome (accepted/empty/debounced).",
		},
		[]string{"outcome"},
	)

	categoryMatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happybot_category_matches_total",
			Help: "Classified turns per category, including unknown/fallback defaults.",
		},
		[]string{"category"},
	)

	gamesStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happybot_games_started_total",
			Help: "Mini-games started per game id.",
		},
		[]string{"game"},
	)

	gamesResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happybot_games_resolved_total",
			Help: "Mini-games resolved per game id and result (correct/win/lose/tie/skipped).",
		},
		[]string{"game", "result"},
	)

	botMessages = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "happybot_bot_messages_total",
			Help: "Bot replies emitted, including timer-driven messages.",
		},
	)

	sessionsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "happybot_sessions_started_total",
			Help: "Sessions created per frontend (web/telegram/demo).",
		},
		[]string{"frontend"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			turnsTotal, categoryMatches,
			gamesStarted, gamesResolved,
			botMessages, sessionsStarted,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// -------- Engine helpers --------

func IncTurn(outcome string) {
	turnsTotal.WithLabelValues(norm(outcome)).Inc()
}

func IncCategory(category string) {
	categoryMatches.WithLabelValues(norm(category)).Inc()
}

func IncGameStarted(game string) {
	gamesStarted.WithLabelValues(norm(game)).Inc()
}

func IncGameResolved(game, result string) {
	gamesResolved.WithLabelValues(norm(game), norm(result)).Inc()
}

func IncBotMessage() {
	botMessages.Inc()
}

func IncSessionStarted(frontend string) {
	sessionsStarted.WithLabelValues(norm(frontend)).Inc()
}
