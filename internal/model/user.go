// Package model defines the data structures used throughout the application.
package model

// User represents a registered account.
//
// The password is never stored — only PasswordDigest, the fixed-length
// one-way digest computed by the auth package. Login works by recomputing
// the digest and matching (username, digest) exactly, so the digest must be
// deterministic (see internal/auth).
//
// WHY ID int64?
// The users table uses SQLite's INTEGER PRIMARY KEY AUTOINCREMENT, and
// database/sql reports last-insert ids as int64. Using int64 end to end
// avoids conversions at every layer boundary.
type User struct {
	ID             int64
	Username       string // unique, enforced by the users table
	PasswordDigest string // hex-encoded digest, never the plaintext
}
