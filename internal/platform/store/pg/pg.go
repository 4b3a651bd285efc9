// Package pg wraps a pgx pool behind the narrow Querier seam repos use
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the read/write surface repos depend on.
// *pgxpool.Pool satisfies it; tests provide fakes
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Config holds pool settings
type Config struct {
	URL      string
	MaxConns int32
}

// PG owns the pool
type PG struct {
	pool *pgxpool.Pool
}

// Open parses cfg, connects, and pings
func Open(ctx context.Context, cfg Config) (*PG, error) {
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PG{pool: pool}, nil
}

// Querier returns the pool as the repo seam
func (p *PG) Querier() Querier { return p.pool }

// Close releases the pool
func (p *PG) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
