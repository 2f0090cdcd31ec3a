package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/medsystem/medsystem/internal/config"
)

// Postgres wraps the SQL database connection
type Postgres struct {
	*sql.DB
}

// NewPostgres creates a new PostgreSQL connection
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxConns := cfg.MaxConnections
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(max(1, maxConns/4))
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{DB: db}, nil
}

// HealthCheck verifies the database connection is healthy
func (p *Postgres) HealthCheck(ctx context.Context) error {
	return p.PingContext(ctx)
}
