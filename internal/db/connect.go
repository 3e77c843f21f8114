package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"fyyur/internal/config"
	"fyyur/internal/logger"
)

const maxRetries = 5

// IsPostgres reports whether dsn points at a Postgres server rather than a SQLite file.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens the configured database, retrying the first ping a few times while the
// server comes up.
func Connect(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	var sqldb *sql.DB
	var err error

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Connecting to %s (attempt %d/%d)", dialectName(cfg.URL), i+1, maxRetries))
		sqldb, err = open(cfg)
		if err == nil {
			err = sqldb.PingContext(ctx)
			if err == nil {
				break
			}
			sqldb.Close()
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to connect: %v", err))
		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(cfg.RetryDelay):
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxRetries, err)
	}

	var bunDB *bun.DB
	if IsPostgres(cfg.URL) {
		bunDB = bun.NewDB(sqldb, pgdialect.New())
	} else {
		bunDB = bun.NewDB(sqldb, sqlitedialect.New())
	}
	log.Info("DATABASE", fmt.Sprintf("✅ %s connection successful", dialectName(cfg.URL)))
	return &DB{Bun: bunDB}, nil
}

func open(cfg config.DatabaseConfig) (*sql.DB, error) {
	if IsPostgres(cfg.URL) {
		sqldb, err := sql.Open("postgres", cfg.URL)
		if err != nil {
			return nil, err
		}
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
		sqldb.SetConnMaxLifetime(cfg.MaxLifetime)
		return sqldb, nil
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.URL)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection also keeps :memory: databases intact.
	sqldb.SetMaxOpenConns(1)
	return sqldb, nil
}

func dialectName(dsn string) string {
	if IsPostgres(dsn) {
		return "PostgreSQL"
	}
	return "SQLite"
}
