// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"happybot/internal/config"
	"happybot/internal/domain/ports/repository"
	tele "happybot/internal/infra/adapters/telegram"
	"happybot/internal/infra/logging"
	"happybot/internal/infra/memory"
	"happybot/internal/infra/metrics"
	red "happybot/internal/infra/redis"
	"happybot/internal/infra/rng"
	"happybot/internal/infra/sched"
	"happybot/internal/infra/web"
	"happybot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, relaxed cookies)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	if cfg.Runtime.Dev {
		logger.Info().Msg("[DEV MODE] Enabled")
	}

	metrics.MustRegister()

	// ---- Settings store (redis, in-memory fallback) ----
	var settingsRepo repository.SettingsRepository
	if cfg.Redis.URL != "" {
		client, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, settings stay in memory")
			settingsRepo = memory.NewSettingsRepo()
		} else {
			defer client.Close()
			settingsRepo = red.NewSettingsRepo(client)
		}
	} else {
		settingsRepo = memory.NewSettingsRepo()
	}

	// ---- Randomness & engine tuning ----
	rnd := rng.New(cfg.Widget.Seed)
	tuning := usecase.Tuning{
		Debounce:        cfg.Widget.Debounce(),
		GamePromptDelay: cfg.Widget.GamePromptDelay(),
		HintDelay:       cfg.Widget.HintDelay(),
		IdleChance:      cfg.Widget.IdleChance,
		UnknownShare:    usecase.DefaultTuning().UnknownShare,
	}

	// ---- Web widget ----
	hub := web.NewHub(settingsRepo, rnd, tuning, logger)
	srv := web.NewServer(hub, cfg.Admin.Secret, cfg.Admin.Password, !cfg.Runtime.Dev, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(web.StaticFS(), logger),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Telegram frontend (optional) ----
	if cfg.Bot.Token != "" {
		botAdapter, err := tele.NewRealBotAdapter(&cfg.Bot, settingsRepo, rnd, tuning, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("telegram adapter")
		}
		go func() {
			if err := botAdapter.StartPolling(ctx); err != nil && err != context.Canceled {
				logger.Error().Err(err).Msg("telegram polling stopped")
			}
		}()
		idleTg := sched.NewIdleWorker(cfg.Widget.IdleInterval(), botAdapter, logger)
		go func() { _ = idleTg.Run(ctx) }()
	} else {
		noop := tele.NewNoopBotAdapter(logger)
		go func() { _ = noop.StartPolling(ctx) }()
	}

	// ---- Background workers ----
	idle := sched.NewIdleWorker(cfg.Widget.IdleInterval(), hub, logger)
	go func() { _ = idle.Run(ctx) }()
	janitor := sched.NewJanitorWorker(time.Minute, cfg.Widget.SessionTTL(), hub, logger)
	go func() { _ = janitor.Run(ctx) }()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
