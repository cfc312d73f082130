// Package repository defines the storage interfaces the service layer
// depends on. The sqlite subpackage provides the real implementation;
// tests substitute in-memory fakes.
package repository

import (
	"context"

	"github.com/sakif/cinebox/internal/model"
)

// UserRepository persists credentials.
type UserRepository interface {
	// Create inserts a new user and fills in user.ID.
	// Returns apperror.ErrConflict (wrapped) if the username is taken,
	// leaving the table unchanged.
	Create(ctx context.Context, user *model.User) error

	// Authenticate returns the user matching (username, digest) exactly.
	// A miss is apperror.ErrNotFound (wrapped); the caller must not be told
	// which half of the pair was wrong.
	Authenticate(ctx context.Context, username, digest string) (*model.User, error)
}

// CatalogRepository persists the admin-managed movie and food catalogs.
type CatalogRepository interface {
	// AddMovie inserts a movie and fills in movie.ID. Duplicates of
	// (name, showtime) are allowed.
	AddMovie(ctx context.Context, movie *model.Movie) error

	// ListMovies returns all movies in insertion (id) order.
	ListMovies(ctx context.Context) ([]model.Movie, error)

	// RemoveMovie deletes the movie with the given id and returns its name.
	// Returns apperror.ErrNotFound (wrapped) if no such row exists.
	RemoveMovie(ctx context.Context, id int64) (string, error)

	// AddFood inserts a food item and fills in item.ID. Duplicate names
	// are allowed.
	AddFood(ctx context.Context, item *model.FoodItem) error

	// ListFood returns all food items in insertion (id) order.
	ListFood(ctx context.Context) ([]model.FoodItem, error)

	// RemoveFood deletes the food item with the given id and returns its
	// name. Returns apperror.ErrNotFound (wrapped) if no such row exists.
	RemoveFood(ctx context.Context, id int64) (string, error)

	// SeedDefaultFood inserts the fixed concession list, skipping each
	// entry whose exact name already exists. Safe to call on every startup.
	SeedDefaultFood(ctx context.Context) error
}

// PurchaseRepository is the append-only ledger.
type PurchaseRepository interface {
	// Record appends a purchase and fills in purchase.ID. It never fails
	// except on storage errors, which propagate unrecovered.
	Record(ctx context.Context, purchase *model.Purchase) error

	// History returns the user's purchases in insertion (id) order.
	// An unknown or purchase-less user yields an empty slice, not an error.
	History(ctx context.Context, userID int64) ([]model.Purchase, error)
}
