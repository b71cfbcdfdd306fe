package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/silh/garcombot/pkg/backend"
	"github.com/silh/garcombot/pkg/bots"
	"github.com/silh/garcombot/pkg/config"
	"github.com/silh/garcombot/pkg/db"
	"github.com/silh/garcombot/pkg/ledger"
	"github.com/silh/garcombot/pkg/logger"
)

var log = logger.Logger()

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalw("Failed to read .env", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Invalid configuration", "err", err)
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatalw("Invalid LOG_LEVEL", "level", cfg.LogLevel, "err", err)
	}

	botAPI, err := tg.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalw("Failed to create new bot API", "err", err)
	}
	log.Infow("Authorized", "account", botAPI.Self.UserName, "mode", cfg.Mode)

	opts := bots.Options{
		Username:    botAPI.Self.UserName,
		Mode:        cfg.Mode,
		Access:      bots.NewAccessList(cfg.WaiterChats, cfg.KitchenChats),
		PollTimeout: cfg.PollTimeout,
	}
	if cfg.APIBaseURL != "" {
		opts.Backend = backend.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	}
	if cfg.Mode != config.ModeAPI {
		store, closeStore := openLedgerStore(cfg.LedgerDir)
		defer closeStore()
		opts.Ledger = ledger.New(store)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := bots.New(botAPI, opts).Run(ctx); err != nil {
		log.Fatalw("Bot stopped", "err", err)
	}
	log.Info("Bot stopped")
}

// openLedgerStore returns the nutsdb store when dir is set and the in-memory one otherwise.
func openLedgerStore(dir string) (ledger.Store, func()) {
	if dir == "" {
		return ledger.NewMemoryStore(), func() {}
	}
	storage, err := db.Open(dir)
	if err != nil {
		log.Fatalw("Failed to open ledger storage", "err", err)
	}
	return db.NewOrdersDB(storage), func() {
		if err := storage.Close(); err != nil {
			log.Warnw("Failed to close ledger storage", "err", err)
		}
	}
}
