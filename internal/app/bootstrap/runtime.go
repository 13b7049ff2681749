package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundforge/dashboard-service/internal/adapters/cache"
	eventadapter "github.com/fundforge/dashboard-service/internal/adapters/events"
	httpadapter "github.com/fundforge/dashboard-service/internal/adapters/http"
	"github.com/fundforge/dashboard-service/internal/adapters/notify"
	"github.com/fundforge/dashboard-service/internal/adapters/postgres"
	"github.com/fundforge/dashboard-service/internal/adapters/security"
	"github.com/fundforge/dashboard-service/internal/application"
	"github.com/fundforge/dashboard-service/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	outbox     *eventadapter.OutboxWorker
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).With("service", cfg.ServiceID)
	slog.SetDefault(logger)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	var (
		cacheStore ports.Cache
		closers    []io.Closer
	)
	if cfg.RedisURL != "" {
		redisClient, redisErr := cache.Connect(ctx, cfg.RedisURL)
		if redisErr != nil {
			_ = sqlDB.Close()
			return nil, redisErr
		}
		cacheStore = cache.NewRedisCache(redisClient, "dashboard:")
		closers = append(closers, redisClient)
	}

	verifier, err := security.NewJWTVerifier(cfg.JWTSecret)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	dispatcher := eventadapter.NewDispatcher(logger)
	notifier := buildNotifier(cfg, logger)
	for _, event := range []string{"dashboard.submission_submitted", "dashboard.reviewed"} {
		dispatcher.Subscribe(event, notifier.Notify)
	}

	repos := postgres.NewRepositories(db)
	service := application.NewService(application.Dependencies{
		Config: application.Config{
			ServiceName:     cfg.ServiceID,
			SocialsCacheTTL: cfg.SocialsCacheTTL,
			DefaultPerPage:  cfg.DefaultPerPage,
			MaxPerPage:      cfg.MaxPerPage,
			HistoryLimit:    cfg.HistoryLimit,
		},
		Logger:     logger,
		Campaigns:  repos.Campaigns,
		Issuers:    repos.Issuers,
		Socials:    repos.Socials,
		Infos:      repos.CampaignInfos,
		Summaries:  repos.CampaignSummaries,
		Subs:       repos.Submissions,
		Approvals:  repos.Approvals,
		Histories:  repos.ApprovalHistories,
		Reads:      repos.Reads,
		Outbox:     repos.Outbox,
		Cache:      cacheStore,
		Verifier:   verifier,
		Dispatcher: dispatcher,
	})

	handler := httpadapter.NewHandler(service)
	router := httpadapter.NewRouter(handler, logger)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	publisher := ports.EventPublisher(eventadapter.NewLoggingPublisher(logger))
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, pubErr := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			"dashboard.submission_submitted": cfg.KafkaTopicSubmissionSubmitted,
			"dashboard.reviewed":             cfg.KafkaTopicDashboardReviewed,
		})
		if pubErr != nil {
			logger.WarnContext(ctx, "kafka publisher disabled, using logging publisher", "error", pubErr)
		} else {
			publisher = kafkaPublisher
			closers = append(closers, kafkaPublisher)
		}
	}
	outbox := eventadapter.NewOutboxWorker(logger, repos.Outbox, publisher, cfg.OutboxPollInterval, cfg.OutboxBatchSize)

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpServer,
		outbox:     outbox,
		cleanupFn: func(ctx context.Context) {
			for _, closer := range closers {
				_ = closer.Close()
			}
			_ = sqlDB.Close()
		},
	}, nil
}

func buildNotifier(cfg Config, logger *slog.Logger) ports.Notifier {
	var channels []ports.Notifier
	if cfg.SMTPHost != "" && len(cfg.SMTPTo) > 0 {
		channels = append(channels, notify.NewEmailNotifier(notify.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			To:       cfg.SMTPTo,
		}))
	}
	if cfg.SlackWebhookURL != "" {
		channels = append(channels, notify.NewWebhookNotifier(cfg.SlackWebhookURL))
	}
	if len(channels) == 0 {
		return notify.NewLoggingNotifier(logger)
	}
	return notify.NewMultiNotifier(channels...)
}

func Build(ctx context.Context, configPath string) (*Runtime, error) {
	return NewRuntime(ctx, configPath)
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)

	go func() {
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		r.logger.ErrorContext(ctx, "runtime failure", "error", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}

func (r *Runtime) RunWorker(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errCh := make(chan error, 1)

	go func() {
		if err := r.outbox.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		r.cleanupFn(context.Background())
		return nil
	case err := <-errCh:
		r.cleanupFn(context.Background())
		return err
	}
}
