package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contactbook/contact"
	"contactbook/group"
	"contactbook/httpserver"
	"contactbook/pkg/config"
	"contactbook/pkg/logger"
	"contactbook/pkg/sentry"
	"contactbook/postgres"
	"contactbook/report"
	"contactbook/sqlite"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		sentry.Fatal(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	if err := sentry.Init(cfg.SentryDSN, cfg.AppEnv); err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	log.Infow("store opened", "driver", cfg.DB.Driver)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithContactService(contact.NewUsecase(postgres.NewContactRepository(db))),
		httpserver.WithGroupService(group.NewUsecase(postgres.NewGroupRepository(db))),
		httpserver.WithReportService(report.NewUsecase(postgres.NewReportRepository(db))),
		httpserver.WithStorePing(func(ctx context.Context) error { return postgres.Ping(ctx, db) }),
	)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore connects to the configured database. The sqlite store has no
// migration files and builds its schema from the models.
func openStore(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := sqlite.NewConnection(sqlite.Options{Path: cfg.DB.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
		return db, nil
	default:
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     fmt.Sprintf("%d", cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres connection: %w", err)
		}
		return db, nil
	}
}
