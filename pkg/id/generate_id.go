// Package id issues the opaque identifiers the ledger hands out for
// loans. Public ids are 32-char lowercase hex with no separators, so
// they survive URLs, headers and log greps unchanged.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns a fresh 32-char lowercase hex id (16 random bytes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
