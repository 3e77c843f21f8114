package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"fyyur/internal/api"
	"fyyur/internal/database/migrations"
	"fyyur/internal/datetime"
	"fyyur/internal/db"
	"fyyur/internal/directory"
	"fyyur/internal/flash"
	"fyyur/internal/qr"
	"fyyur/internal/web"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fyyur web server",
	RunE:  runServe,
}

// app holds everything serve needs to run and tear down.
type app struct {
	handler http.Handler
	store   *db.DB
	redis   *redis.Client
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("APP", "Starting Fyyur initialization")
	a, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      a.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Fyyur running on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
		return err
	}
	log.Info("HTTP", "✅ Fyyur shutdown complete")
	return nil
}

// buildApp connects the database, prepares its schema and wires the HTTP handler.
func buildApp(ctx context.Context) (*app, error) {
	store, err := db.Connect(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	a := &app{store: store}

	if err := prepareSchema(ctx, store, false); err != nil {
		a.Close()
		return nil, err
	}

	loc, err := cfg.App.Location()
	if err != nil {
		a.Close()
		return nil, err
	}
	formatter := datetime.New(cfg.App.Locale, loc)

	renderer, err := web.NewRenderer(formatter)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	svc := directory.NewService(store, formatter, log)
	h := api.NewHandler(svc, renderer, log)
	h.QR = qr.NewGenerator(cfg.App.BaseURL)
	h.Parser = formatter
	h.DB = store
	h.Flash = flash.NewMemoryStore(cfg.Redis.FlashTTL)

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("REDIS", fmt.Sprintf("Redis unavailable at %s, keeping flash messages in memory: %v", cfg.Redis.Addr, err))
			client.Close()
		} else {
			log.Info("REDIS", fmt.Sprintf("✅ Redis connection successful to %s (DB: %d)", cfg.Redis.Addr, cfg.Redis.DB))
			h.Flash = flash.NewRedisStore(client, cfg.Redis.FlashTTL)
			a.redis = client
		}
	}

	a.handler = h.Router()
	log.Info("ROUTER", "Directory routes registered")
	return a, nil
}

// prepareSchema creates SQLite tables in place. Postgres goes through the versioned
// migrations when auto-migrate is on.
func prepareSchema(ctx context.Context, store *db.DB, seedData bool) error {
	if !db.IsPostgres(cfg.Database.URL) {
		if err := store.CreateSchema(ctx); err != nil {
			return err
		}
		log.LogDatabase("CREATE", "venues, artists, shows", "SQLite schema ready")
		return nil
	}

	if !cfg.Database.AutoMigrate && !seedData {
		log.Info("MIGRATE", "Auto-migrate disabled, skipping migrations")
		return nil
	}
	runner := migrations.NewRunner(store.Bun, migrations.MigrateOptions{
		AutoMigrate: cfg.Database.AutoMigrate,
		SeedData:    seedData,
	}, log)
	defer runner.Close()
	return runner.RunMigrations()
}
