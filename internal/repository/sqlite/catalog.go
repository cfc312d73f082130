package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// compile-time check that *DB implements repository.CatalogRepository
var _ repository.CatalogRepository = (*DB)(nil)

// AddMovie inserts a movie and fills in movie.ID. No uniqueness is enforced
// on (name, showtime) — the same movie can be listed for several showtimes,
// or twice for the same one.
func (db *DB) AddMovie(ctx context.Context, movie *model.Movie) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO movies (name, showtime) VALUES (?, ?)`,
		movie.Name, movie.Showtime,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting movie %q: %w", movie.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new movie id: %w", err)
	}
	movie.ID = id

	return nil
}

// ListMovies returns all movies in id order. Id order is insertion order,
// which keeps the 1-based display indexes stable across a session.
func (db *DB) ListMovies(ctx context.Context) ([]model.Movie, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, showtime FROM movies ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing movies: %w", err)
	}
	defer rows.Close()

	var movies []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Name, &m.Showtime); err != nil {
			return nil, fmt.Errorf("sqlite: scanning movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating movies: %w", err)
	}

	return movies, nil
}

// RemoveMovie deletes one movie by id and returns its name for the
// confirmation message. Purchases that snapshot this movie are untouched.
func (db *DB) RemoveMovie(ctx context.Context, id int64) (string, error) {
	var name string
	err := db.conn.QueryRowContext(ctx,
		`SELECT name FROM movies WHERE id = ?`, id,
	).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperror.NotFound("movie", id)
		}
		return "", fmt.Errorf("sqlite: looking up movie %d: %w", id, err)
	}

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM movies WHERE id = ?`, id,
	); err != nil {
		return "", fmt.Errorf("sqlite: deleting movie %d: %w", id, err)
	}

	return name, nil
}

// AddFood inserts a food item and fills in item.ID. Duplicate names are
// allowed; removal targets a single row by id.
func (db *DB) AddFood(ctx context.Context, item *model.FoodItem) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO food (name, price) VALUES (?, ?)`,
		item.Name, item.Price,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting food %q: %w", item.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new food id: %w", err)
	}
	item.ID = id

	return nil
}

// ListFood returns all food items in id order.
func (db *DB) ListFood(ctx context.Context) ([]model.FoodItem, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, price FROM food ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing food: %w", err)
	}
	defer rows.Close()

	var items []model.FoodItem
	for rows.Next() {
		var it model.FoodItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, fmt.Errorf("sqlite: scanning food item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating food: %w", err)
	}

	return items, nil
}

// RemoveFood deletes one food item by id and returns its name.
func (db *DB) RemoveFood(ctx context.Context, id int64) (string, error) {
	var name string
	err := db.conn.QueryRowContext(ctx,
		`SELECT name FROM food WHERE id = ?`, id,
	).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperror.NotFound("food item", id)
		}
		return "", fmt.Errorf("sqlite: looking up food item %d: %w", id, err)
	}

	if _, err := db.conn.ExecContext(ctx,
		`DELETE FROM food WHERE id = ?`, id,
	); err != nil {
		return "", fmt.Errorf("sqlite: deleting food item %d: %w", id, err)
	}

	return name, nil
}
