package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"nba-fantasy-etl/internal/logging"
)

// Store loads table extracts into PostgreSQL and runs the post-load SQL
// (name fixups, projections, staging merges).
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect opens a connection pool against dsn and verifies it with a ping.
func Connect(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	logging.Info(logger, "connected to postgres")
	return &Store{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}
