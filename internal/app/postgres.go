package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kohakudev/minutes-api/internal/config"
)

func MustConnectPostgres(cfg *config.Config, logger zerolog.Logger) *pgxpool.Pool {
	pgCfg := cfg.Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pgCfg.Username, pgCfg.Password, pgCfg.Host,
		pgCfg.Port, pgCfg.Database, pgCfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = pgCfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pgCfg.PingTimeout)
	defer cancel()

	err = pool.Ping(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	logger.Info().
		Str("host", pgCfg.Host).
		Int("port", pgCfg.Port).
		Msg("connected to postgres")

	return pool
}

func DisconnectPostgres(pool *pgxpool.Pool, logger zerolog.Logger) {
	pool.Close()
	logger.Info().Msg("disconnected from postgres")
}

// MustMigratePostgres brings the schema up on startup. Statements are
// idempotent, so restarting against an existing database is safe.
func MustMigratePostgres(pool *pgxpool.Pool, logger zerolog.Logger) {
	const createSchemaQuery = `
CREATE TABLE IF NOT EXISTS meetings (
    id              BIGSERIAL PRIMARY KEY,
    title           VARCHAR(100) NOT NULL,
    date            TIMESTAMPTZ  NOT NULL,
    start_time      VARCHAR(5)   NOT NULL,
    end_time        VARCHAR(5)   NOT NULL,
    participants    TEXT,
    audio_file_path VARCHAR(255),
    transcript      TEXT,
    summary         TEXT,
    created_at      TIMESTAMPTZ  NOT NULL,
    updated_at      TIMESTAMPTZ  NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id         BIGSERIAL PRIMARY KEY,
    meeting_id BIGINT      NOT NULL REFERENCES meetings (id) ON DELETE CASCADE,
    content    TEXT        NOT NULL,
    assignee   VARCHAR(30),
    due_date   TIMESTAMPTZ,
    status     VARCHAR(20) NOT NULL DEFAULT 'pending',
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_meeting_id ON tasks (meeting_id);
`
	_, err := pool.Exec(context.Background(), createSchemaQuery)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to migrate postgres schema")
		panic(err)
	}
	logger.Info().Msg("migrated postgres schema")
}
