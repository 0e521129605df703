package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSiteURL is the public origin used for hreflang links.
const DefaultSiteURL = "https://www.pittsburghpioneer.com"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ChecklistSalt string
	IPHashSalt    string
	SiteURL       string
	LogMode       string
	EnvFile       string
}

// ParseFlags reads flags, then an optional dotenv file, then falls back to
// environment variables for anything not set on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pioneer", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SiteURL, "site-url", "", "Public site origin for hreflang links")
	fs.StringVar(&cfg.LogMode, "log-mode", "", "Log mode (dev or prod; empty picks by terminal)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "dotenv file to load (missing file is ignored)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ChecklistSalt, "checklist-salt", "", "Checklist id salt (prefer env)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = os.Getenv("SITE_URL")
		if cfg.SiteURL == "" {
			cfg.SiteURL = DefaultSiteURL
		}
	}
	if cfg.LogMode == "" {
		cfg.LogMode = os.Getenv("LOG_MODE")
	}

	// Secrets - MUST be provided
	if cfg.ChecklistSalt == "" {
		cfg.ChecklistSalt = os.Getenv("CHECKLIST_SALT")
	}
	if cfg.ChecklistSalt == "" {
		return Config{}, errors.New("CHECKLIST_SALT required")
	}

	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	return cfg, nil
}

// loadEnvFile sets variables from a dotenv file without overriding ones
// already in the environment.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
