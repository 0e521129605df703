// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pioneer API server.

Pioneer helps newcomers settle in the Pittsburgh region. The server normalizes
multilingual screening answers to stable codes, stores screenings under a
deterministic checklist id, validates JSON-LD structured data and builds
alternate-language links for public pages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=pioneer.db CHECKLIST_SALT=... IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -checklist-salt ... -ip-salt ...

Settings may also come from a .env file (see -env).

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - CHECKLIST_SALT (-checklist-salt): Secret for checklist id HMAC
  - IP_HASH_SALT (-ip-salt): Secret for client IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SITE_URL (-site-url): Public origin used in hreflang links
  - LOG_MODE (-log-mode): dev or prod

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (survey, screening, structured data, SEO)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - survey: Question catalog, label normalization and profiles
  - structdata: JSON-LD validation and report formatting
  - seo: Hreflang links and section anchors
  - keycase: camelCase and snake_case answer keys
  - ids: Checklist ids, submission ids and IP hashing
  - models: Request/response types
  - db: Connection and schema creation
  - logger: zap-backed structured logging
  - cliparse: Configuration parsing

The validate-schemas command under cmd/ checks structured data in page
sources from the command line.

See package documentation for each component.
*/
package main
