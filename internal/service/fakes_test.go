package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
)

// In-memory fakes for the repository interfaces. Using hand-written fakes
// (not a mock framework) keeps the tests dependency-free and readable —
// you can see exactly what each fake does.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users  []*model.User
	nextID int64
	// set to a non-nil error to simulate a storage failure
	createErr error
	authErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return apperror.Conflict("user", user.Username)
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserRepo) Authenticate(ctx context.Context, username, digest string) (*model.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	for _, u := range f.users {
		if u.Username == username && u.PasswordDigest == digest {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperror.InvalidCredentials()
}

type fakeCatalogRepo struct {
	movies []model.Movie
	food   []model.FoodItem
	nextID int64

	listMoviesErr error
	listFoodErr   error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{nextID: 1}
}

func (f *fakeCatalogRepo) AddMovie(ctx context.Context, movie *model.Movie) error {
	movie.ID = f.nextID
	f.nextID++
	f.movies = append(f.movies, *movie)
	return nil
}

func (f *fakeCatalogRepo) ListMovies(ctx context.Context) ([]model.Movie, error) {
	if f.listMoviesErr != nil {
		return nil, f.listMoviesErr
	}
	return append([]model.Movie(nil), f.movies...), nil
}

func (f *fakeCatalogRepo) RemoveMovie(ctx context.Context, id int64) (string, error) {
	for i, m := range f.movies {
		if m.ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return m.Name, nil
		}
	}
	return "", apperror.NotFound("movie", id)
}

func (f *fakeCatalogRepo) AddFood(ctx context.Context, item *model.FoodItem) error {
	item.ID = f.nextID
	f.nextID++
	f.food = append(f.food, *item)
	return nil
}

func (f *fakeCatalogRepo) ListFood(ctx context.Context) ([]model.FoodItem, error) {
	if f.listFoodErr != nil {
		return nil, f.listFoodErr
	}
	return append([]model.FoodItem(nil), f.food...), nil
}

func (f *fakeCatalogRepo) RemoveFood(ctx context.Context, id int64) (string, error) {
	for i, it := range f.food {
		if it.ID == id {
			f.food = append(f.food[:i], f.food[i+1:]...)
			return it.Name, nil
		}
	}
	return "", apperror.NotFound("food item", id)
}

func (f *fakeCatalogRepo) SeedDefaultFood(ctx context.Context) error {
	seeds := []model.FoodItem{
		{Name: "Refrigerante", Price: 7.0},
		{Name: "Pipoca Doce", Price: 10.0},
		{Name: "Pipoca Salgada", Price: 10.0},
		{Name: "Chocolate", Price: 5.0},
		{Name: "Bala", Price: 3.0},
	}
	for _, seed := range seeds {
		found := false
		for _, it := range f.food {
			if it.Name == seed.Name {
				found = true
				break
			}
		}
		if !found {
			item := seed
			f.AddFood(ctx, &item)
		}
	}
	return nil
}

type fakePurchaseRepo struct {
	purchases []model.Purchase
	nextID    int64

	recordErr error
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{nextID: 1}
}

func (f *fakePurchaseRepo) Record(ctx context.Context, purchase *model.Purchase) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	purchase.ID = f.nextID
	f.nextID++
	f.purchases = append(f.purchases, *purchase)
	return nil
}

func (f *fakePurchaseRepo) History(ctx context.Context, userID int64) ([]model.Purchase, error) {
	out := []model.Purchase{}
	for _, p := range f.purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
