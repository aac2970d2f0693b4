package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"unishort/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS http_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	method      TEXT             NOT NULL,
	path        TEXT             NOT NULL,
	status_code INTEGER          NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL,
	client_ip   TEXT             NOT NULL,
	error       TEXT             NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS business_metrics (
	time        TIMESTAMPTZ      NOT NULL,
	metric_name TEXT             NOT NULL,
	value       DOUBLE PRECISION NOT NULL,
	labels      JSONB
);

CREATE TABLE IF NOT EXISTS shorten_attempts (
	time        TIMESTAMPTZ      NOT NULL,
	provider    TEXT             NOT NULL,
	success     BOOLEAN          NOT NULL,
	duration_ms DOUBLE PRECISION NOT NULL
);

CREATE INDEX IF NOT EXISTS shorten_attempts_provider_time_idx ON shorten_attempts (provider, time DESC);
`

// MetricsStore owns the Postgres pool that metrics are written to.
type MetricsStore struct {
	pool *pgxpool.Pool
}

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode, cfg.MaxConns,
	)
}

func NewMetricsStore(ctx context.Context, cfg *config.DatabaseConfig) (*MetricsStore, error) {
	pool, err := pgxpool.New(ctx, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &MetricsStore{pool: pool}, nil
}

func (s *MetricsStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create metrics tables: %w", err)
	}
	return nil
}

func (s *MetricsStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *MetricsStore) Close() {
	s.pool.Close()
}
