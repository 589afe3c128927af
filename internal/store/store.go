// Package store holds the key-value backends the resume snapshot is
// persisted to. Every backend stores opaque bytes under a string key.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// KV is a durable string-keyed byte store. Get reports ok=false when the key
// has never been written.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	io.Closer
}

type Options struct {
	Driver     string
	Dir        string
	SQLitePath string
	DSN        string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
}

// Open picks a backend by driver name.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch opts.Driver {
	case "memory", "":
		return NewMemory(), nil
	case "file":
		return NewFile(opts.Dir)
	case "sqlite":
		return NewSQLite(opts.SQLitePath)
	case "redis":
		return NewRedis(ctx, opts.RedisAddr, opts.RedisPass, opts.RedisDB)
	case "postgres":
		return NewPostgres(ctx, opts.DSN)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
}
