package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB owns the process-wide connection pool. The pool is created on first use:
// concurrent first callers share a single initialization and everyone else
// waits on it. Close is a safe no-op after the first call.
//
// There is no retry policy here; a failed initialization is returned to every
// subsequent caller as-is.
type DB struct {
	dsn         string
	maxConns    int32
	minConns    int32
	maxConnLife time.Duration

	initOnce  sync.Once
	closeOnce sync.Once
	pool      *pgxpool.Pool
	initErr   error
}

func NewDB(dsn string, maxConns, minConns int32, maxConnLife time.Duration) *DB {
	return &DB{
		dsn:         dsn,
		maxConns:    maxConns,
		minConns:    minConns,
		maxConnLife: maxConnLife,
	}
}

// Pool returns the shared pgx pool, opening it on first use.
func (d *DB) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	d.initOnce.Do(func() {
		cfg, err := pgxpool.ParseConfig(d.dsn)
		if err != nil {
			d.initErr = err
			return
		}
		cfg.MaxConns = d.maxConns
		cfg.MinConns = d.minConns
		cfg.MaxConnLifetime = d.maxConnLife

		pool, err := pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			d.initErr = err
			return
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			d.initErr = err
			return
		}
		d.pool = pool
	})
	return d.pool, d.initErr
}

// Close releases the pool exactly once; repeated calls are no-ops.
func (d *DB) Close() {
	d.closeOnce.Do(func() {
		if d.pool != nil {
			d.pool.Close()
		}
	})
}
