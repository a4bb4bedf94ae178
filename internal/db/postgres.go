package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// FAVORITES
	// -------------------------------
	// Rows for one client are rewritten as a whole on every toggle, so
	// position is authoritative and there are no per-row updates.
	favoritesSQL := `
		CREATE TABLE IF NOT EXISTS favorites (
			client_id VARCHAR(64) NOT NULL,
			position INT NOT NULL,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(100) NOT NULL,
			description TEXT NOT NULL,
			reasoning TEXT NOT NULL,
			estimated_price VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (client_id, position)
		)
	`
	if _, err := pool.Exec(ctx, favoritesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SEARCH HISTORY
	// -------------------------------
	historySQL := `
		CREATE TABLE IF NOT EXISTS search_history (
			client_id VARCHAR(64) NOT NULL,
			position INT NOT NULL,
			query VARCHAR(500) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (client_id, position)
		)
	`
	if _, err := pool.Exec(ctx, historySQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
