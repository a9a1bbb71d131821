package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/quickforms/internal/adapter/postgres"
	formrepo "github.com/heartmarshall/quickforms/internal/adapter/postgres/form"
	responserepo "github.com/heartmarshall/quickforms/internal/adapter/postgres/response"
	"github.com/heartmarshall/quickforms/internal/auth"
	"github.com/heartmarshall/quickforms/internal/config"
	formsvc "github.com/heartmarshall/quickforms/internal/service/form"
	responsesvc "github.com/heartmarshall/quickforms/internal/service/response"
	"github.com/heartmarshall/quickforms/internal/transport/middleware"
)

// Run is the server entry point. It loads configuration, connects to the
// database, applies migrations and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	results, err := postgres.Migrate(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, res := range results {
		logger.Info("migration applied",
			slog.Int64("version", res.Source.Version),
			slog.Duration("duration", res.Duration),
		)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	forms := formrepo.New(pool)
	responses := responserepo.New(pool)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	deps := RouterDeps{
		Config:    cfg,
		Logger:    logger,
		Forms:     formsvc.NewService(logger, forms, cfg.App.PublicURL),
		Responses: responsesvc.NewService(logger, responses, forms),
		Counter:   responses,
		DB:        pool,
		Limiter:   limiter,
	}
	if cfg.Auth.Enabled() {
		deps.Tokens = auth.NewOwnerTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	} else {
		logger.Warn("owner auth disabled; responses and exports are public")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
