// Package pgutil opens bun connections to PostgreSQL and provides
// testcontainer helpers for store tests.
package pgutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ontio/explorer-nodes/pkg/config"
)

const (
	defaultDialTimeout  = 5 * time.Second
	defaultReadTimeout  = 10 * time.Second
	defaultPingTimeout  = 5 * time.Second
	defaultMaxOpenConns = 20
)

// ConnectDB opens a pooled connection to the configured database and pings it.
func ConnectDB(ctx context.Context, cfg *config.DatabaseConfig) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil database config")
	}

	// Functional options escape special characters in credentials.
	connector := pgdriver.NewConnector(
		pgdriver.WithNetwork("tcp"),
		pgdriver.WithAddr(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		pgdriver.WithUser(cfg.User),
		pgdriver.WithPassword(cfg.Password),
		pgdriver.WithDatabase(cfg.Database),
		pgdriver.WithInsecure(cfg.SSLMode == "" || cfg.SSLMode == "disable"),
		pgdriver.WithDialTimeout(defaultDialTimeout),
		pgdriver.WithReadTimeout(defaultReadTimeout),
		pgdriver.WithApplicationName("explorer-nodes"),
	)

	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(defaultMaxOpenConns)
	sqldb.SetMaxIdleConns(defaultMaxOpenConns / 2)

	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Database, err)
	}

	return db, nil
}
