package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/infrastructure/migration"
	"resume-builder/pkg/infrastructure"
)

// Postgres stores values in the kv_store table created by the migrations.
type Postgres struct {
	pool  *pgxpool.Pool
	owned bool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := infrastructure.NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := migration.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Postgres{pool: pool, owned: true}, nil
}

// NewPostgresWithPool shares a pool the caller manages.
func NewPostgresWithPool(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Pool exposes the connection pool so other repositories can share it.
func (p *Postgres) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var v []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying %s: %w", key, err)
	}
	return v, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("upserting %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	if p.owned {
		p.pool.Close()
	}
	return nil
}
