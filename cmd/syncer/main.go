package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gbpsync/internal/config"
	"gbpsync/internal/notifier"
	"gbpsync/internal/scheduler"
	"gbpsync/internal/service"
	"gbpsync/internal/source/instagram"
	"gbpsync/internal/storage/postgres"
	"gbpsync/internal/target/gbp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one ingestion and exit")
	publish := flag.String("publish", "", "comma-separated external ids to publish, then exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ notifier
	events, err := notifier.NewRabbitMQ(notifier.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer events.Close()

	// Initialize stores
	postStore := postgres.NewPostStore(db)
	historyStore := postgres.NewRunHistoryStore(db)

	// Initialize external clients
	igSource := instagram.New(instagram.Config{
		BaseURL: cfg.Instagram.BaseURL,
		Limit:   cfg.Instagram.Limit,
		Timeout: cfg.Instagram.Timeout,
	}, logger)

	gbpClient := gbp.New(gbp.Config{
		BaseURL:         cfg.GBP.BaseURL,
		LanguageCode:    cfg.GBP.LanguageCode,
		FallbackSummary: cfg.GBP.FallbackSummary,
		Timeout:         cfg.GBP.Timeout,
	}, logger)

	syncService := service.NewSyncService(
		igSource,
		gbpClient,
		postStore,
		historyStore,
		events,
		instagram.Credentials{
			AccessToken: cfg.Instagram.AccessToken,
			AccountID:   cfg.Instagram.AccountID,
		},
		gbp.Credentials{
			AccessToken: cfg.GBP.AccessToken,
			LocationID:  cfg.GBP.LocationID,
		},
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *publish != "" {
		ids := splitIDs(*publish)
		if _, err := syncService.RunPublish(ctx, ids); err != nil {
			os.Exit(1)
		}
		return
	}

	if *once {
		if _, err := syncService.RunIngestion(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	sched := scheduler.NewScheduler(syncService, &scheduler.RunLock{}, cfg.Sync.Interval, logger)

	logger.Info("starting post syncer",
		"account_id", cfg.Instagram.AccountID,
		"interval", cfg.Sync.Interval,
		"limit", cfg.Instagram.Limit,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
