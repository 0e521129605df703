// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connections

Open picks the driver from the configured database type:

  - sqlite: modernc.org/sqlite (pure Go, no cgo); the URL is a file path or ":memory:"
  - postgres: github.com/lib/pq

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

sqlite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - screening_response: one row per screening submission, with the normalized
    answers (snake_case keys) and derived profile as JSON text, the locale,
    a salted client IP hash and the user agent

# Indexes

  - screening_response.checklist_id
  - screening_response.created_at
*/
package db
