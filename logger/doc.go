// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logger wraps zap's sugared logger with key/value helpers and
// redaction of salts, secrets and connection strings.
package logger
