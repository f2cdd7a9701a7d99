package db

import (
	"context"
	"time"

	"mealslot/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ConnectPostgres opens the pool for the given DSN and makes sure the
// schema exists. Fatal on any failure: the process cannot run with a
// half-configured database.
func ConnectPostgres(dsn string) *pgxpool.Pool {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("invalid DATABASE_URL", zap.Error(err))
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logger.Fatal("postgres pool init failed", zap.Error(err))
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Fatal("postgres connection failed", zap.Error(err))
	}

	if err := initSchema(pool); err != nil {
		logger.Fatal("failed to initialize schema", zap.Error(err))
	}

	logger.Info("connected to PostgreSQL")
	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// DISHES
	// -------------------------------
	dishesSQL := `
		CREATE TABLE IF NOT EXISTS dishes (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(32) NOT NULL,
			cuisine VARCHAR(64) NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			kcal INT NOT NULL DEFAULT 0,
			protein_g INT NOT NULL DEFAULT 0,
			time_min INT NOT NULL DEFAULT 0,
			price_cents INT NOT NULL DEFAULT 0,
			health_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
			position INT NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, dishesSQL); err != nil {
		return err
	}

	categoryIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_dishes_category
		ON dishes (category, position)
	`
	if _, err := pool.Exec(ctx, categoryIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// SPIN HISTORY (best-effort audit)
	// -------------------------------
	historySQL := `
		CREATE TABLE IF NOT EXISTS spin_history (
			id UUID PRIMARY KEY,
			room_code VARCHAR(6) NOT NULL DEFAULT '',
			seed TEXT NOT NULL,
			categories TEXT[] NOT NULL DEFAULT '{}',
			result TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, historySQL); err != nil {
		return err
	}

	return nil
}
