// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	conn, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn))
	// idempotent
	require.NoError(t, CreateSchema(conn))

	_, err = conn.Exec(`
		INSERT INTO screening_response (id, checklist_id, answers, profile, locale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, "id-1", "checklist_0123456789ab", `{"audience":"other"}`, `{}`, "es", time.Now().UTC())
	require.NoError(t, err)

	var locale string
	var createdAt time.Time
	err = conn.QueryRow(`SELECT locale, created_at FROM screening_response WHERE checklist_id = $1`,
		"checklist_0123456789ab").Scan(&locale, &createdAt)
	require.NoError(t, err)
	assert.Equal(t, "es", locale)
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)
}

func TestOpen_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pioneer.db")

	conn, err := Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	require.NoError(t, CreateSchema(conn))
	require.NoError(t, conn.Close())

	conn, err = Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM screening_response`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "x")
	assert.ErrorContains(t, err, "unsupported database type")
}
