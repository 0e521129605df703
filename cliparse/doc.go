// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string or sqlite file (required)
  - DatabaseType: sqlite (default) or postgres
  - ChecklistSalt: Secret for checklist id HMAC (required)
  - IPHashSalt: Secret for client IP hashing (required)
  - SiteURL: Public origin for hreflang links (default: https://www.pittsburghpioneer.com)
  - LogMode: dev, prod, or empty to decide by terminal

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-site-url         Public site origin
	-log-mode         Log mode
	-env              dotenv file (default: .env)
	-checklist-salt   Checklist id salt
	-ip-salt          IP hash salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SITE_URL       → -site-url
	LOG_MODE       → -log-mode
	CHECKLIST_SALT → -checklist-salt
	IP_HASH_SALT   → -ip-salt

CLI flags take precedence over environment variables. Before the fallback,
the dotenv file named by -env is loaded with godotenv; variables already set
in the environment are not overridden, and a missing file is ignored.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - CHECKLIST_SALT must be provided
  - IP_HASH_SALT must be provided

DATABASE_TYPE must be sqlite or postgres.
*/
package cliparse
