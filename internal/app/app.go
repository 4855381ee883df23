// Package app wires configuration, Telegram, the spreadsheet and the optional
// journal and manager notifications into a running bot.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gratefultolord/study_request_bot/internal/bot"
	"github.com/gratefultolord/study_request_bot/internal/config"
	"github.com/gratefultolord/study_request_bot/internal/db"
	"github.com/gratefultolord/study_request_bot/internal/logcfg"
	"github.com/gratefultolord/study_request_bot/internal/metrics"
	"github.com/gratefultolord/study_request_bot/internal/notify"
	"github.com/gratefultolord/study_request_bot/internal/server"
	"github.com/gratefultolord/study_request_bot/internal/sheets"
	"github.com/gratefultolord/study_request_bot/internal/sink"
	"github.com/gratefultolord/study_request_bot/internal/telegram"
)

const webhookBuffer = 100

// App holds the long-lived dependencies of the bot process.
type App struct {
	config   *config.Config
	registry *prometheus.Registry
	store    *bot.MemoryStore
	botAPI   *tgbotapi.BotAPI
	gateway  *telegram.Gateway
	database *db.DB
	service  *bot.BotService
}

// NewApp builds every dependency. Nothing talks to Telegram's update API
// until Run is called.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{config: cfg}

	inits := []func(context.Context) error{
		a.initLogger,
		a.initMetrics,
		a.initTelegram,
		a.initService,
	}

	for _, f := range inits {
		if err := f(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

func (a *App) initLogger(_ context.Context) error {
	return logcfg.RunLoggerConfig(a.config.LogLevel, a.config.LogFileName)
}

func (a *App) initMetrics(_ context.Context) error {
	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.store = bot.NewMemoryStore()

	return nil
}

func (a *App) initTelegram(_ context.Context) error {
	botAPI, err := tgbotapi.NewBotAPI(a.config.BotToken)
	if err != nil {
		return fmt.Errorf("app.initTelegram: %w", err)
	}
	botAPI.Debug = a.config.BotDebug

	a.botAPI = botAPI
	a.gateway = telegram.NewGateway(botAPI)

	return nil
}

func (a *App) initService(ctx context.Context) error {
	catalog, err := bot.LoadCatalog(a.config.CatalogPath)
	if err != nil {
		return fmt.Errorf("app.initService: %w", err)
	}

	creds, err := a.config.GoogleCredentials()
	if err != nil {
		return fmt.Errorf("app.initService: %w", err)
	}

	spreadsheet, err := sheets.New(ctx, creds, a.config.SpreadsheetID, a.config.SheetRange)
	if err != nil {
		return fmt.Errorf("app.initService: %w", err)
	}

	var mirrors []sink.Named

	if a.config.JournalEnabled() {
		database, err := db.New(a.config.DBDriver, a.config.DBDSN)
		if err != nil {
			return fmt.Errorf("app.initService: %w", err)
		}
		a.database = database

		if err := db.RunMigrations(database.Conn); err != nil {
			return fmt.Errorf("app.initService: %w", err)
		}

		mirrors = append(mirrors, sink.Named{Name: "journal", Sink: db.NewSubmissionRepository(database.Conn)})
	}

	if len(a.config.ManagerChatIDs) > 0 {
		mirrors = append(mirrors, sink.Named{Name: "managers", Sink: notify.NewManagers(a.gateway, a.config.ManagerChatIDs)})
	}

	fanout := sink.NewFanout(sink.Named{Name: "spreadsheet", Sink: spreadsheet}, mirrors...)

	a.service = bot.New(
		catalog,
		a.store,
		fanout,
		a.gateway,
		bot.WithRecorder(metrics.New(a.registry, a.store.Len)),
	)

	return nil
}

// Run receives updates by webhook when WEBHOOK_URL is set and by long polling
// otherwise, and blocks until ctx is done or a component fails.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	opts := server.Options{Gatherer: a.registry}

	var updates <-chan tgbotapi.Update
	if a.config.WebhookEnabled() {
		if err := telegram.RegisterWebhook(a.botAPI, a.config.WebhookURL); err != nil {
			return fmt.Errorf("App.Run: %w", err)
		}

		ch := make(chan tgbotapi.Update, webhookBuffer)
		opts.WebhookPath = a.config.WebhookPath
		opts.Updates = ch
		updates = ch

		logrus.Infof("receiving updates by webhook at %s", a.config.WebhookURL)
	} else {
		if err := telegram.DeleteWebhook(a.botAPI); err != nil {
			return fmt.Errorf("App.Run: %w", err)
		}

		updates = telegram.Poll(gctx, a.botAPI)

		logrus.Info("receiving updates by long polling")
	}

	g.Go(func() error {
		return server.Run(gctx, a.config.HTTPAddr, server.NewRouter(opts))
	})

	g.Go(func() error {
		return telegram.NewDispatcher(a.service).Run(gctx, updates)
	})

	logrus.Infof("bot started as @%s", a.botAPI.Self.UserName)

	return g.Wait()
}

func (a *App) Close() {
	if a.database == nil {
		return
	}

	if err := a.database.Close(); err != nil {
		logrus.WithError(err).Error("failed to close database")
	}
}
