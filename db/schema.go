// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements are portable between sqlite and postgres; answers and
// profile are JSON text.
const schema = `
-- Screening submissions
CREATE TABLE IF NOT EXISTS screening_response (
    id TEXT PRIMARY KEY,
    checklist_id TEXT NOT NULL,
    answers TEXT NOT NULL,
    profile TEXT NOT NULL,
    locale TEXT NOT NULL DEFAULT 'en',
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_screening_response_checklist_id ON screening_response(checklist_id);
CREATE INDEX IF NOT EXISTS idx_screening_response_created_at ON screening_response(created_at);
`
