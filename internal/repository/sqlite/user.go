package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// Create inserts a new user and fills in user.ID.
//
// The username is checked first so a duplicate surfaces as a clean
// apperror.Conflict instead of a driver-specific constraint message. The
// UNIQUE constraint on the column still backs this up at the schema level.
// There is a single interactive session, so check-then-insert has no race
// to worry about.
func (db *DB) Create(ctx context.Context, user *model.User) error {
	var count int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ?`, user.Username,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("sqlite: checking username %q: %w", user.Username, err)
	}
	if count > 0 {
		return apperror.Conflict("user", user.Username)
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, password_digest) VALUES (?, ?)`,
		user.Username, user.PasswordDigest,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new user id: %w", err)
	}
	user.ID = id

	return nil
}

// Authenticate looks up the exact (username, digest) pair.
//
// Both columns go into the WHERE clause — a wrong password misses the row
// the same way an unknown username does, and the caller gets the same
// uninformative error either way.
func (db *DB) Authenticate(ctx context.Context, username, digest string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password_digest
		 FROM users WHERE username = ? AND password_digest = ?`,
		username, digest,
	).Scan(&u.ID, &u.Username, &u.PasswordDigest)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("sqlite: authenticating %q: %w", username, err)
	}

	return &u, nil
}
