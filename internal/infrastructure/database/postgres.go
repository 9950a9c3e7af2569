package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-api/internal/config"
	"bookcatalog-api/pkg/logger"
)

// PostgresDB wraps the pgx connection pool and its lifecycle. The pool is
// shared by every repository; each query acquires a connection for the
// duration of the round trip and releases it on return.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config config.DatabaseConfig
}

func NewPostgresDB(cfg config.DatabaseConfig) *PostgresDB {
	return &PostgresDB{Config: cfg}
}

// Connect establishes the pool, retrying with a linear backoff so the
// service survives the database coming up after it.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(db.Config.ConnString())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = db.Config.MaxConns
	poolCfg.MinConns = db.Config.MinConns
	poolCfg.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err == nil {
			db.Pool = pool
			logger.Info("connected to postgres", map[string]interface{}{
				"host":     db.Config.Host,
				"database": db.Config.Database,
				"attempt":  attempt,
			})
			return nil
		}

		logger.Warn("postgres connection failed, retrying", map[string]interface{}{
			"attempt": attempt,
			"error":   err.Error(),
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(db.Config.RetryDelay * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("failed to connect to postgres after %d attempts: %w", db.Config.MaxRetries, err)
}

// HealthCheck pings the pool with a short deadline.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Pool.Ping(ctx)
}

// Close releases every pooled connection.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
