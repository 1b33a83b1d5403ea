package config

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var pgxPool *pgxpool.Pool

// BootPgxPool opens the pool the reporting queries read through. Reports run
// beside GORM on purpose: plain SQL joins, no model loading.
func BootPgxPool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pgxPool = pool
	return pgxPool, nil
}
