package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/service"
)

// runBooking walks one booking from movie selection to the receipt.
//
// The flow is linear with no backtracking: each step re-prompts locally on
// invalid input and hands its result to the next. Nothing is persisted
// until the final commit, so aborting at any step (empty catalog, closed
// input) leaves the ledger untouched.
func (m *Menu) runBooking(ctx context.Context, sess *service.Session) error {
	// Step 1: movie selection.
	movies, err := m.bookings.Movies(ctx)
	if errors.Is(err, apperror.ErrEmptyCatalog) {
		m.render.Error("No movies registered. Please contact an administrator.")
		return nil
	}
	if err != nil {
		return err
	}

	lines := make([]string, len(movies))
	for i, mv := range movies {
		lines[i] = fmt.Sprintf("%s - Showtime: %s", mv.Name, mv.Showtime)
	}
	m.render.List("Available movies:", lines)

	idx, err := m.prompt.Index("Choose a movie: ", len(movies))
	if err != nil {
		return err
	}
	movie := movies[idx-1]

	// Step 2: row selection.
	m.render.List("Available rows:", service.SeatRows)
	idx, err = m.prompt.Index("Choose a row: ", len(service.SeatRows))
	if err != nil {
		return err
	}
	row := service.SeatRows[idx-1]

	// Step 3: seat selection.
	m.render.List("Available seats:", service.SeatNumbers)
	idx, err = m.prompt.Index("Choose a seat: ", len(service.SeatNumbers))
	if err != nil {
		return err
	}
	seat := service.SeatNumbers[idx-1]

	// Step 4: fare. The class is read once — any answer other than the
	// student code is simply a full-price ticket, so there is nothing to
	// re-prompt about.
	class, err := m.prompt.Line("Ticket class (1: student, 2: full): ")
	if err != nil {
		return err
	}
	m.render.Info(fmt.Sprintf("Ticket price: R$ %.2f", m.bookings.TicketPrice(class)))

	// Step 5: food cart.
	cart, err := m.runCart(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrEmptyCatalog) {
			m.render.Error("No food registered. Please contact an administrator.")
			return nil
		}
		return err
	}

	// Step 6: commit and receipt.
	purchase, err := m.bookings.Purchase(ctx, sess, movie, row, seat, class, cart)
	if err != nil {
		return err
	}
	m.render.Receipt(purchase, cart.Lines)

	return nil
}

// runCart repeatedly lists the food catalog and accumulates picks until the
// user enters 0. Selection is by the 1-based display index of the list.
func (m *Menu) runCart(ctx context.Context) (service.Cart, error) {
	var cart service.Cart

	for {
		items, err := m.bookings.FoodItems(ctx)
		if err != nil {
			return cart, err
		}

		lines := make([]string, len(items))
		for i, it := range items {
			lines[i] = fmt.Sprintf("%s - R$ %.2f", it.Name, it.Price)
		}
		m.render.List("Available food:", lines)

		idx, err := m.prompt.IndexOrZero("Add an item to the cart (0 to finish): ", len(items))
		if err != nil {
			return cart, err
		}
		if idx == 0 {
			return cart, nil
		}
		item := items[idx-1]

		qty, err := m.prompt.PositiveInt(fmt.Sprintf("How many units of %s? ", item.Name))
		if err != nil {
			return cart, err
		}

		cart.Add(item, qty)
	}
}
