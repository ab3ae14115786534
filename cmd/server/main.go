package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/BerylCAtieno/edupath-mentor/internal/a2a"
	"github.com/BerylCAtieno/edupath-mentor/internal/app"
	"github.com/BerylCAtieno/edupath-mentor/internal/config"
	"github.com/BerylCAtieno/edupath-mentor/internal/logger"
	"github.com/BerylCAtieno/edupath-mentor/internal/mentor"
	"github.com/BerylCAtieno/edupath-mentor/internal/observability"
	"github.com/BerylCAtieno/edupath-mentor/internal/server"
	"github.com/BerylCAtieno/edupath-mentor/internal/web"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	prod := isProd(cfg.Server.Mode)
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, version, log)
	if err != nil {
		return err
	}

	gen, err := mentor.NewTextGenerator(cfg.LLM)
	if err != nil {
		return err
	}
	if cfg.LLM.Backend == config.BackendGemini && cfg.LLM.APIKey() == "" {
		log.Warn("API key is not set; generation will fail until it is", "env", cfg.LLM.APIKeyEnv)
	}
	svc := mentor.NewService(gen, log)

	sessions := app.NewSessions(svc, cfg.Server.SessionTTL, log)
	router := server.NewRouter(server.RouterConfig{
		Log:        log,
		WebHandler: web.NewHandler(sessions, log, prod, cfg.Server.SessionTTL),
		A2AHandler: a2a.NewA2AHandler(svc, log, version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	log.Info("EduPath Mentor starting",
		"port", cfg.Server.Port,
		"backend", cfg.LLM.Backend,
		"model", cfg.LLM.Model,
		"version", version,
	)
	log.Info("agent card available", "url", fmt.Sprintf("http://localhost:%s%s", cfg.Server.Port, a2a.CardPath))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		sessions.Janitor(gctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
		return nil
	})

	return g.Wait()
}

func isProd(mode string) bool {
	m := strings.ToLower(mode)
	return m == "prod" || m == "production"
}
