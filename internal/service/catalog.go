package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// CatalogService handles the admin-facing movie and food catalog
// operations. There is no role model: any user who reaches the admin menu
// entries may call these.
type CatalogService struct {
	catalog repository.CatalogRepository
	logger  *slog.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(catalog repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// AddMovie validates and stores a new movie. Duplicates of (title,
// showtime) are deliberately allowed.
func (s *CatalogService) AddMovie(ctx context.Context, title, showtime string) (*model.Movie, error) {
	title = strings.TrimSpace(title)
	showtime = strings.TrimSpace(showtime)

	if title == "" {
		return nil, apperror.ValidationFailed("title", "movie title is required")
	}
	if showtime == "" {
		return nil, apperror.ValidationFailed("showtime", "showtime is required")
	}

	movie := &model.Movie{Name: title, Showtime: showtime}
	if err := s.catalog.AddMovie(ctx, movie); err != nil {
		return nil, fmt.Errorf("service/catalog: adding movie %q: %w", title, err)
	}

	s.logger.Info("movie added",
		slog.Int64("movieID", movie.ID),
		slog.String("title", movie.Name),
		slog.String("showtime", movie.Showtime),
	)

	return movie, nil
}

// ListMovies returns the movie catalog in insertion order.
func (s *CatalogService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.catalog.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/catalog: listing movies: %w", err)
	}
	return movies, nil
}

// RemoveMovie deletes a movie by id and returns its title for the
// confirmation message.
func (s *CatalogService) RemoveMovie(ctx context.Context, id int64) (string, error) {
	title, err := s.catalog.RemoveMovie(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service/catalog: removing movie %d: %w", id, err)
	}

	s.logger.Info("movie removed",
		slog.Int64("movieID", id),
		slog.String("title", title),
	)

	return title, nil
}

// AddFood validates and stores a new food item. Duplicate names are
// allowed; a negative price is not.
func (s *CatalogService) AddFood(ctx context.Context, name string, price float64) (*model.FoodItem, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "food name is required")
	}
	if price < 0 {
		return nil, apperror.ValidationFailed("price", "price must not be negative")
	}

	item := &model.FoodItem{Name: name, Price: price}
	if err := s.catalog.AddFood(ctx, item); err != nil {
		return nil, fmt.Errorf("service/catalog: adding food %q: %w", name, err)
	}

	s.logger.Info("food item added",
		slog.Int64("foodID", item.ID),
		slog.String("name", item.Name),
		slog.Float64("price", item.Price),
	)

	return item, nil
}

// ListFood returns the food catalog in insertion order.
func (s *CatalogService) ListFood(ctx context.Context) ([]model.FoodItem, error) {
	items, err := s.catalog.ListFood(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/catalog: listing food: %w", err)
	}
	return items, nil
}

// RemoveFood deletes a food item by id and returns its name.
func (s *CatalogService) RemoveFood(ctx context.Context, id int64) (string, error) {
	name, err := s.catalog.RemoveFood(ctx, id)
	if err != nil {
		return "", fmt.Errorf("service/catalog: removing food %d: %w", id, err)
	}

	s.logger.Info("food item removed",
		slog.Int64("foodID", id),
		slog.String("name", name),
	)

	return name, nil
}

// Seed inserts the default concession items, skipping any already present.
// Called once per startup, right after the schema is in place.
func (s *CatalogService) Seed(ctx context.Context) error {
	if err := s.catalog.SeedDefaultFood(ctx); err != nil {
		return fmt.Errorf("service/catalog: seeding food: %w", err)
	}
	return nil
}
