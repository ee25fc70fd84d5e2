package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

var idKeyPattern = regexp.MustCompile(`^IDS_[A-Z0-9_]+$`)

// IsIDKey reports whether s is a well-formed translation identifier.
func IsIDKey(s string) bool {
	return idKeyPattern.MatchString(s)
}

// Hash computes a SHA-256 hex hash of a string, used to fingerprint
// generated artifacts in logs.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
