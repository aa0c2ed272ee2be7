package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/tobrien/bookvault-api/internal/config"
	"github.com/tobrien/bookvault-api/internal/platform/postgres"
	"github.com/tobrien/bookvault-api/internal/service/auth"
	"github.com/tobrien/bookvault-api/internal/store"
)

// application holds the wired dependencies for the running server.
// Everything is constructed once at startup and injected into handlers;
// there is no package-level shared state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	bookStore store.BookStore

	tokenService auth.TokenService
	hasher       *auth.BcryptHasher
}

// newApplication builds the full dependency graph: database pool,
// schema bootstrap, stores, and auth services.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		userStore:    postgres.NewPostgresUserStore(db, log),
		bookStore:    postgres.NewPostgresBookStore(db, log),
		tokenService: tokenService,
		hasher:       auth.NewBcryptHasher(cfg.Auth.BcryptCost),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
