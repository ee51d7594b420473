// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/careerpath/internal/api"
	"github.com/tomtom215/careerpath/internal/config"
	"github.com/tomtom215/careerpath/internal/logging"
	"github.com/tomtom215/careerpath/internal/supervisor"
	"github.com/tomtom215/careerpath/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, the default logger writes this one
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("CareerPath failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires the catalog, predictor, engine and HTTP API into a supervisor
// tree and blocks until ctx is canceled.
func run(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Bool("predictor_enabled", cfg.Predictor.Enabled).
		Msg("Starting CareerPath")
	warnUnsafeSettings(cfg)

	cat, _, err := initCatalog(ctx, cfg.Catalog, logging.WithComponent("catalog"))
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	pred, err := initPredictor(cfg.Predictor, logging.WithComponent("predictor"))
	if err != nil {
		return fmt.Errorf("init predictor: %w", err)
	}

	tree, err := supervisor.NewSupervisorTree(logging.SupervisorLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	engine, err := initRecommend(cfg, cat, pred, logging.Logger(), tree)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	router := api.NewRouter(
		api.NewHandler(engine, cfg.Server.Timeout),
		api.NewChiMiddleware(buildMiddlewareConfig(cfg)),
	)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Leave room for the handler to write its 504 after the request deadline
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	return serveUntilDone(ctx, tree)
}

// serveUntilDone runs the tree and reports services that outlived the
// shutdown timeout.
func serveUntilDone(ctx context.Context, tree *supervisor.SupervisorTree) error {
	logging.Info().Msg("Starting supervisor tree")

	err := tree.Serve(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	return err
}

func warnUnsafeSettings(cfg *config.Config) {
	if cfg.Server.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins outside development")
	}
}

// buildMiddlewareConfig maps server settings onto the chi middleware defaults.
func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORS.AllowedOrigins = cfg.Server.CORSOrigins
	mw.RateLimit = api.RateLimitConfig{Requests: cfg.Server.RateLimitReqs, Window: cfg.Server.RateLimitWindow}
	mw.RateLimitDisabled = cfg.Server.RateLimitDisabled
	return mw
}
