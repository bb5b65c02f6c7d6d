package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewDisbursementRef returns "DISB-" plus 8 uppercase hex characters.
func NewDisbursementRef() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return "DISB-" + strings.ToUpper(hex.EncodeToString(b))
}
