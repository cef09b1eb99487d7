package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	var (
		db          repository.DB
		contactRepo repository.ContactRepository
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		slog.Warn("using in-memory contact store; messages are lost on restart")
		mem := repository.NewMemoryContactRepository()
		db, contactRepo = mem, mem
	default:
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := repository.Migrate(pool); err != nil {
				logging.Fatal("migration failed", "error", err)
			}
		}
		db, contactRepo = pool, repository.NewPgContactRepository(pool)
	}

	contactService := service.NewContactService(contactRepo)

	var static http.Handler
	if sh, err := handler.NewStaticHandler(cfg.StaticDir); err != nil {
		slog.Warn("static files disabled", "dir", cfg.StaticDir, "error", err)
	} else {
		slog.Info("serving static files", "dir", cfg.StaticDir)
		static = sh
	}

	server := &http.Server{
		Addr: cfg.Addr(),
		Handler: handler.NewRouter(handler.RouterConfig{
			DB:                 db,
			ContactService:     contactService,
			FrontendURL:        cfg.FrontendURL,
			AdminToken:         cfg.AdminToken,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
			Static:             static,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "storage", cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
