package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rg/tgcli/internal/config"
	"github.com/rg/tgcli/internal/decor"
	"github.com/rg/tgcli/internal/dispatch"
	"github.com/rg/tgcli/internal/logger"
	"github.com/rg/tgcli/internal/messaging"
	"github.com/rg/tgcli/internal/messaging/botapi"
	"github.com/rg/tgcli/internal/messaging/mtproto"
	"github.com/rg/tgcli/internal/session"
	"github.com/rg/tgcli/internal/storage"
	"github.com/rg/tgcli/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if err := logger.Configure(cfg.Log.Level, cfg.Log.File); err != nil {
		logger.Error("Failed to configure logging", "error", err)
		os.Exit(1)
	}
	logger.Debug(cfg.String())

	store, err := storage.NewStorage(cfg.Storage.DBPath)
	if err != nil {
		logger.Error("Failed to initialize history storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("History database initialized", "path", cfg.Storage.DBPath)

	transport, err := newTransport(cfg)
	if err != nil {
		logger.Error("Failed to initialize transport", "error", err)
		os.Exit(1)
	}
	defer transport.Close()

	table := decor.NewTable(cfg.UI.ExtendedEmoji)
	decorator := decor.NewDecorator(table, rand.New(rand.NewSource(time.Now().UnixNano())))
	state := session.New()

	theme := ui.MatrixTheme()
	loop, err := ui.NewLoop(state, ui.NewCompleter(table), theme)
	if err != nil {
		logger.Error("Failed to initialize terminal input", "error", err)
		os.Exit(1)
	}
	defer loop.Close()

	console := ui.NewConsole(loop.Stdout(), theme)
	dispatcher := dispatch.NewDispatcher(transport, state, decorator, store, console)
	transport.OnIncoming(dispatcher.HandleIncoming)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := transport.Run(ctx); err != nil {
			logger.Error("Transport stopped with error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("Received signal, shutting down", "signal", sig)
		cancel()
		loop.Close()
	}()

	console.Welcome()

	loop.Run(func(line string) bool {
		return dispatcher.HandleLine(ctx, line)
	})

	console.Infof("Client disconnected.")
}

func newTransport(cfg *config.Config) (messaging.Transport, error) {
	if cfg.Telegram.Transport == config.TransportBot {
		return botapi.NewClient(cfg.Telegram.BotToken)
	}
	return mtproto.NewClient(mtproto.Config{
		AppID:       cfg.Telegram.APIID,
		AppHash:     cfg.Telegram.APIHash,
		Phone:       cfg.Telegram.Phone,
		SessionFile: cfg.Telegram.SessionFile,
	})
}
