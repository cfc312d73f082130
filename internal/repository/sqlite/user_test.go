package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
)

// createTestUser creates a user and fails the test if it errors.
// The digest is whatever string the caller passes — these tests exercise
// storage, not the digest computation (see internal/auth for that).
func createTestUser(t *testing.T, db *DB, username, digest string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordDigest: digest}
	if err := db.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)

	user := &model.User{Username: "ana", PasswordDigest: "digest-ana"}
	if err := db.Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == 0 {
		t.Error("Create() did not set user.ID")
	}
}

func TestUserCreate_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "ana", "digest-one")

	// Same username, different digest — must conflict, leaving one row.
	duplicate := &model.User{Username: "ana", PasswordDigest: "digest-two"}
	err := db.Create(ctx, duplicate)
	if err == nil {
		t.Fatal("Create() should have failed for a duplicate username")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("Create() error = %v, want ErrConflict", err)
	}

	var count int
	if err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE username = ?`, "ana",
	).Scan(&count); err != nil {
		t.Fatalf("counting users: %v", err)
	}
	if count != 1 {
		t.Errorf("users named ana = %d, want exactly 1", count)
	}
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "ana", "digest-ana")

	found, err := db.Authenticate(context.Background(), "ana", "digest-ana")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
	if found.Username != "ana" {
		t.Errorf("Username = %q, want %q", found.Username, "ana")
	}
}

func TestAuthenticate_WrongDigest(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "ana", "digest-ana")

	_, err := db.Authenticate(context.Background(), "ana", "digest-wrong")
	if err == nil {
		t.Fatal("Authenticate() should have failed for a wrong digest")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Authenticate() error = %v, want ErrNotFound", err)
	}
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Authenticate(context.Background(), "nobody", "digest-any")
	if err == nil {
		t.Fatal("Authenticate() should have failed for an unknown username")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Authenticate() error = %v, want ErrNotFound", err)
	}
}
