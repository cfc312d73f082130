package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
)

func addTestMovie(t *testing.T, db *DB, name, showtime string) *model.Movie {
	t.Helper()
	m := &model.Movie{Name: name, Showtime: showtime}
	if err := db.AddMovie(context.Background(), m); err != nil {
		t.Fatalf("failed to add test movie: %v", err)
	}
	return m
}

func TestMoviesAddListRemove(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := addTestMovie(t, db, "Matrix", "14:00")
	addTestMovie(t, db, "Alien", "21:30")

	movies, err := db.ListMovies(ctx)
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("ListMovies() returned %d movies, want 2", len(movies))
	}
	// Insertion order.
	if movies[0].Name != "Matrix" || movies[1].Name != "Alien" {
		t.Errorf("ListMovies() order = [%s, %s], want [Matrix, Alien]", movies[0].Name, movies[1].Name)
	}

	name, err := db.RemoveMovie(ctx, first.ID)
	if err != nil {
		t.Fatalf("RemoveMovie() error = %v", err)
	}
	if name != "Matrix" {
		t.Errorf("RemoveMovie() returned %q, want %q", name, "Matrix")
	}

	movies, err = db.ListMovies(ctx)
	if err != nil {
		t.Fatalf("ListMovies() after remove error = %v", err)
	}
	if len(movies) != 1 || movies[0].Name != "Alien" {
		t.Errorf("after remove, %d movies left, want only Alien", len(movies))
	}
}

func TestMoviesAllowDuplicates(t *testing.T) {
	db := newTestDB(t)

	// Same (name, showtime) twice — both rows stay, each with its own id.
	a := addTestMovie(t, db, "Matrix", "14:00")
	b := addTestMovie(t, db, "Matrix", "14:00")
	if a.ID == b.ID {
		t.Error("duplicate movies share an id")
	}

	movies, err := db.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("got %d movies, want 2 (duplicates allowed)", len(movies))
	}
}

func TestRemoveMovie_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.RemoveMovie(context.Background(), 999)
	if err == nil {
		t.Fatal("RemoveMovie() should have failed for an unknown id")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("RemoveMovie() error = %v, want ErrNotFound", err)
	}
}

func TestFoodAddListRemove(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	soda := &model.FoodItem{Name: "Refrigerante", Price: 7.0}
	if err := db.AddFood(ctx, soda); err != nil {
		t.Fatalf("AddFood() error = %v", err)
	}
	if soda.ID == 0 {
		t.Error("AddFood() did not set item.ID")
	}

	items, err := db.ListFood(ctx)
	if err != nil {
		t.Fatalf("ListFood() error = %v", err)
	}
	if len(items) != 1 || items[0].Price != 7.0 {
		t.Fatalf("ListFood() = %+v, want one item at 7.0", items)
	}

	name, err := db.RemoveFood(ctx, soda.ID)
	if err != nil {
		t.Fatalf("RemoveFood() error = %v", err)
	}
	if name != "Refrigerante" {
		t.Errorf("RemoveFood() returned %q, want %q", name, "Refrigerante")
	}

	items, err = db.ListFood(ctx)
	if err != nil {
		t.Fatalf("ListFood() after remove error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("after remove, %d items left, want 0", len(items))
	}
}

func TestRemoveFood_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.RemoveFood(context.Background(), 999)
	if err == nil {
		t.Fatal("RemoveFood() should have failed for an unknown id")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("RemoveFood() error = %v, want ErrNotFound", err)
	}
}

func TestRemoveFood_TargetsOneRowByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Two items with the same name; removing one by id leaves the other.
	a := &model.FoodItem{Name: "Chocolate", Price: 5.0}
	b := &model.FoodItem{Name: "Chocolate", Price: 6.0}
	if err := db.AddFood(ctx, a); err != nil {
		t.Fatalf("AddFood() error = %v", err)
	}
	if err := db.AddFood(ctx, b); err != nil {
		t.Fatalf("AddFood() error = %v", err)
	}

	if _, err := db.RemoveFood(ctx, a.ID); err != nil {
		t.Fatalf("RemoveFood() error = %v", err)
	}

	items, err := db.ListFood(ctx)
	if err != nil {
		t.Fatalf("ListFood() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != b.ID {
		t.Errorf("after remove, items = %+v, want only id %d", items, b.ID)
	}
}
