// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeniaquome/pioneer-mockup-sub002/cliparse"
	"github.com/jeniaquome/pioneer-mockup-sub002/db"
)

// TestDBURL is an in-memory SQLite database. The pool is capped at one
// connection, so every query in a test sees the same database.
const TestDBURL = ":memory:"

// SetupTestDB opens a fresh database with the full schema and closes it when
// the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), "sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  "sqlite",
		ChecklistSalt: "test-checklist-salt",
		IPHashSalt:    "test-ip-salt",
		SiteURL:       "https://example.org",
		LogMode:       "dev",
	}
}

// CountScreenings returns the number of stored screening responses for a checklist id.
func CountScreenings(t *testing.T, conn *sql.DB, checklistID string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`SELECT COUNT(*) FROM screening_response WHERE checklist_id = $1`, checklistID).Scan(&n)
	if err != nil {
		t.Fatalf("Failed to count screenings: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		switch b := body.(type) {
		case string:
			jsonBody = []byte(b)
		case []byte:
			jsonBody = b
		default:
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
