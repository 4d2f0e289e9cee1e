package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/page-index-service/internal/config"
	"github.com/maxviazov/page-index-service/internal/handler"
	"github.com/maxviazov/page-index-service/internal/logger"
	"github.com/maxviazov/page-index-service/internal/service"
)

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}

	// Load application config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, appLogger, &handler.Readiness{})
	stop()
	if cerr := logger.Close(); cerr != nil {
		appLogger.Warn().Err(cerr).Msg("closing debug log failed")
	}
	if err != nil {
		appLogger.Fatal().Err(err).Msg("server stopped with error")
	}
	appLogger.Info().Msg("👋 Service stopped")
}

// run serves until ctx is done or the server fails. readiness is opened only
// once the listener is bound.
func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger, readiness *handler.Readiness) error {
	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(appLogger))

	pageSvc := service.NewPageService(service.Options{Strict: cfg.Pagination.Strict}, appLogger)
	handler.Register(engine, readiness, pageSvc, cfg.Pagination.DefaultItemsPerPage)

	srv := &http.Server{
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ln, err := net.Listen("tcp", cfg.HTTP.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTP.Addr(), err)
	}
	return serve(ctx, srv, ln, readiness, cfg.HTTP.ShutdownTimeout, appLogger)
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener, readiness *handler.Readiness, shutdownTimeout time.Duration, appLogger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	readiness.MarkReady()
	appLogger.Info().Str("addr", ln.Addr().String()).Msg("🚀 Service started")

	select {
	case err, ok := <-errCh:
		readiness.MarkNotReady()
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	readiness.MarkNotReady()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	appLogger.Info().Dur("timeout", shutdownTimeout).Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}
