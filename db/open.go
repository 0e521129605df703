// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types and the database/sql driver each one uses.
var drivers = map[string]string{
	"postgres": "postgres",
	"sqlite":   "sqlite",
}

// Open connects to the database of the given type and verifies the
// connection.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, ok := drivers[dbType]
	if !ok {
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if dbType == "sqlite" {
		// sqlite allows one writer; an in-memory database also lives on a
		// single connection.
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return conn, nil
}
