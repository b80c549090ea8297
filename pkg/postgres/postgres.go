// Package postgres opens the sqlx connection pool, runs migrations and
// provides the transaction helper used by the repositories.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type poolConfig struct {
	connMaxIdleTime time.Duration
	connMaxLifetime time.Duration
	maxIdleConns    int
	maxOpenConns    int
}

func defaultPoolConfig() poolConfig {
	return poolConfig{
		connMaxIdleTime: 5 * time.Minute,
		connMaxLifetime: 30 * time.Minute,
		maxIdleConns:    5,
		maxOpenConns:    25,
	}
}

func (c poolConfig) apply(db *sqlx.DB) {
	db.SetConnMaxIdleTime(c.connMaxIdleTime)
	db.SetConnMaxLifetime(c.connMaxLifetime)
	db.SetMaxIdleConns(c.maxIdleConns)
	db.SetMaxOpenConns(c.maxOpenConns)
}

// Option overrides a pool setting. Non-positive values keep the default.
type Option func(*poolConfig)

func WithConnMaxIdleTime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxIdleTime = d
		}
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxLifetime = d
		}
	}
}

func WithMaxIdleConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxIdleConns = n
		}
	}
}

func WithMaxOpenConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}

// New configures the pool before the first connection is made and pings the
// server. The returned handle is shared by every repository.
func New(ctx context.Context, dsn string, opts ...Option) (*sqlx.DB, error) {
	const op = "postgres.New"

	cfg := defaultPoolConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	cfg.apply(db)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	return db, nil
}
