package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

const defaultBusyTimeout = 5 * time.Second

type DB struct {
	Pool *sql.DB
}

// Options controls how an export database file is opened.
type Options struct {
	// BusyTimeout defaults to 5s when zero.
	BusyTimeout time.Duration
	// Fresh removes any existing file (and its journal) before opening.
	Fresh bool
}

func (o Options) dsn(path string) string {
	busy := o.BusyTimeout
	if busy <= 0 {
		busy = defaultBusyTimeout
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)", path, busy.Milliseconds())
}

func Open(path string, opts Options) (*DB, error) {
	if opts.Fresh {
		for _, p := range []string{path, path + "-journal", path + "-wal", path + "-shm"} {
			if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("remove %s: %w", p, err)
			}
		}
	}

	pool, err := sql.Open("sqlite", opts.dsn(path))
	if err != nil {
		return nil, err
	}

	// one writer per export file
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) Close() error {
	if d == nil || d.Pool == nil {
		return nil
	}
	return d.Pool.Close()
}
