// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/jeniaquome/pioneer-mockup-sub002/models"
)

// ChecklistPrefix starts every checklist id.
const ChecklistPrefix = "checklist_"

var ErrEmptySalt = errors.New("salt must not be empty")

var checklistPattern = regexp.MustCompile(`^checklist_[0-9a-f]{12}$`)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSubmissionID returns a random UUID for a stored screening submission.
func NewSubmissionID() string {
	return uuid.NewString()
}

// ChecklistID derives a deterministic id from normalized answers. Keys are
// sorted before hashing, so answer order does not matter; the salt keeps ids
// from being guessed from common answer combinations.
func ChecklistID(codes *models.AnswerSet, salt string) (string, error) {
	if salt == "" {
		return "", ErrEmptySalt
	}

	canonical := make(map[string]any, codes.Len())
	codes.Range(func(key string, a models.Answer) bool {
		if a.IsMulti() {
			canonical[key] = a.Values()
		} else {
			canonical[key] = a.Value()
		}
		return true
	})
	// encoding/json writes map keys in sorted order.
	payload, err := json.Marshal(canonical)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}

	h := hmac.New(sha256.New, []byte(salt))
	h.Write(payload)
	return ChecklistPrefix + hex.EncodeToString(h.Sum(nil))[:12], nil
}

// ValidChecklistID reports whether s has the shape of a checklist id.
func ValidChecklistID(s string) bool {
	return checklistPattern.MatchString(s)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
