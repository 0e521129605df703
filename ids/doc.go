// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ids generates identifiers and privacy-preserving hashes.

# Checklist IDs

Checklist ids are derived from the normalized answers with HMAC-SHA256:

	id, err := ids.ChecklistID(codes, salt) // "checklist_3f9a0c12be47"

The answers are encoded as JSON with sorted keys, so the same answers always
produce the same id regardless of key order. ErrEmptySalt is returned when no
salt is configured.

# Submission IDs

Stored screening submissions use random UUIDs:

	id := ids.NewSubmissionID()

# Random IDs

	id, err := ids.GenerateID(16)  // 32 hex characters

# IP Hashing

	hash := ids.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package ids
