// Package service contains the business logic layer.
//
// The layering follows the usual three-layer shape:
//
//	console (terminal surface) → service (rules) → repository (storage)
//
// Services accept primitives and return domain errors; they know nothing
// about prompts, menus or rendering. The console layer translates their
// errors into messages, and tests call them directly with fakes.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/xid"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/auth"
	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// Session is the in-memory proof of a successful login. It is passed
// explicitly into booking and history calls — there is no ambient
// "current user" anywhere, and nothing durable is issued: closing the
// program ends the session, and the next run starts at the login prompt.
//
// ID is an xid used purely to correlate log lines from one login; it has
// no security meaning and is never persisted.
type Session struct {
	ID       string
	UserID   int64
	Username string
}

// AuthService handles registration and login.
type AuthService struct {
	users   repository.UserRepository
	digests *auth.DigestService
	logger  *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(users repository.UserRepository, digests *auth.DigestService, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		digests: digests,
		logger:  logger,
	}
}

// Register validates the credentials, digests the password and stores the
// new user. A taken username surfaces as apperror.ErrConflict with no row
// written.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	user := &model.User{
		Username:       username,
		PasswordDigest: s.digests.Digest(password),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("service/auth: registering %q: %w", username, err)
	}

	s.logger.Info("user registered",
		slog.Int64("userID", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login recomputes the digest and asks the store for the exact
// (username, digest) match. Success yields a fresh Session; any miss is the
// same "invalid username or password" error regardless of which half was
// wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.Authenticate(ctx, username, s.digests.Digest(password))
	if err != nil {
		return nil, fmt.Errorf("service/auth: logging in %q: %w", username, err)
	}

	sess := &Session{
		ID:       xid.New().String(),
		UserID:   user.ID,
		Username: user.Username,
	}

	s.logger.Info("user logged in",
		slog.String("session", sess.ID),
		slog.Int64("userID", sess.UserID),
		slog.String("username", sess.Username),
	)

	return sess, nil
}
