// Package auth — password digest utilities.
//
// WHY A DETERMINISTIC DIGEST (AND NOT BCRYPT)?
// Login is implemented as an exact (username, digest) lookup in the users
// table: the credential store recomputes the digest of the typed password
// and asks the database for a row matching both columns. That only works if
// the same password always digests to the same string — no salt, no
// per-call randomness. bcrypt embeds a random salt in its output, so two
// hashes of the same password never compare equal as strings and a
// WHERE-clause lookup can never match.
//
// We use SHA3-256 and store the digest hex-encoded, which gives a stable
// 64-character column value.
package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// DigestService computes password digests.
//
// It is a struct (not a free function) so callers depend on an injected
// value, which keeps the door open for a parameterised scheme later without
// touching every call site.
type DigestService struct{}

// NewDigestService creates a DigestService.
func NewDigestService() *DigestService {
	return &DigestService{}
}

// Digest returns the hex-encoded SHA3-256 digest of the plaintext.
//
// The output is deterministic and fixed-length: the same input always
// produces the same 64-character string. Store it directly; never store
// the plaintext.
func (d *DigestService) Digest(plaintext string) string {
	sum := sha3.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
