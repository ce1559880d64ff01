package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 10 * time.Second

// Connect opens a database/sql pool on the pgx driver. SQL statements are
// traced through the logger when it is at debug level or lower.
func Connect(ctx context.Context, dbURL string, logger zerolog.Logger) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(dbURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse database url")
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if logger.GetLevel() <= zerolog.DebugLevel {
		connConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(logger.With().Str("component", "pgx").Logger()),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	db := stdlib.OpenDB(*connConfig)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		log.Error().Err(err).Msg("failed to ping database")
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func ConnectAndMigrate(ctx context.Context, dbURL string, logger zerolog.Logger) (*sql.DB, error) {
	if err := Migrate(ctx, dbURL, logger); err != nil {
		log.Error().Err(err).Msg("failed to migrate database")
		return nil, err
	}

	return Connect(ctx, dbURL, logger)
}
