package database

import (
	"context"
	"time"

	"lexdata-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens and pings a pgx pool for DATABASE_URL. The pool
// is reserved for upcoming persistence work; no request path queries it yet.
func NewPostgresConnection(connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Log.Info("Database connection established")
	return pool, nil
}
