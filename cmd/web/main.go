package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/config"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	baseLogger, err := observability.NewLogger(cfg.Storefront.LogLevel, cfg.Storefront.DevMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()
	logger := baseLogger.Named("web")
	ctx := observability.WithLogger(context.Background(), logger)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.LoadTimeout)
	loader := catalog.NewLoader(cfg.Catalog.ProductsSource, cfg.Catalog.SettingsSource,
		catalog.WithLogger(logger.Named("catalog")),
	)
	cat := loader.Load(loadCtx)
	cancel()
	if cat.Err() != nil {
		logger.Warn("serving with degraded catalog", zap.Error(cat.Err()), zap.Int("products", cat.Len()))
	}

	a, err := newApp(cfg, cat, logger)
	if err != nil {
		logger.Fatal("failed to initialise storefront", zap.Error(err))
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          zap.NewStdLog(logger.Named("http.server")),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("storefront listening", zap.Bool("dev_mode", cfg.Storefront.DevMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
