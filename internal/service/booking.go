package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// Pricing constants. The base fare is fixed; the only discount class is
// the student ticket.
const (
	BaseTicketPrice        = 20.0
	StudentDiscountPercent = 30.0

	// StudentClass is the discount-class code for a student ticket.
	// Every other code means a full-price ticket.
	StudentClass = "1"
)

// The auditorium is a fixed 5×10 label grid. The labels are cosmetic: no
// capacity is tracked and nothing stops two purchases from naming the same
// row and seat for the same showtime.
var (
	SeatRows    = []string{"A", "B", "C", "D", "E"}
	SeatNumbers = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
)

// Cart accumulates food selections during one booking. It lives only in
// memory; only the subtotal (and the snapshot lines, for the receipt) ever
// leave the flow.
type Cart struct {
	Lines    []model.CartLine
	Subtotal float64
}

// Add appends quantity units of item to the cart. There is no cart size
// limit, no quantity cap and no stock decrement.
func (c *Cart) Add(item model.FoodItem, quantity int) {
	c.Lines = append(c.Lines, model.CartLine{
		Name:      item.Name,
		Quantity:  quantity,
		UnitPrice: item.Price,
	})
	c.Subtotal += float64(quantity) * item.Price
}

// BookingService prices tickets and commits completed bookings to the
// purchase ledger.
type BookingService struct {
	catalog   repository.CatalogRepository
	purchases repository.PurchaseRepository
	logger    *slog.Logger
}

// NewBookingService creates a BookingService.
func NewBookingService(catalog repository.CatalogRepository, purchases repository.PurchaseRepository, logger *slog.Logger) *BookingService {
	return &BookingService{
		catalog:   catalog,
		purchases: purchases,
		logger:    logger,
	}
}

// Movies returns the bookable movies. An empty catalog is
// apperror.ErrEmptyCatalog — the flow aborts on it before anything else
// happens.
func (s *BookingService) Movies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.catalog.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/booking: listing movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, apperror.EmptyCatalog("movies")
	}
	return movies, nil
}

// FoodItems returns the concession catalog for the cart step, with the
// same empty-catalog signal as Movies.
func (s *BookingService) FoodItems(ctx context.Context) ([]model.FoodItem, error) {
	items, err := s.catalog.ListFood(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/booking: listing food: %w", err)
	}
	if len(items) == 0 {
		return nil, apperror.EmptyCatalog("food")
	}
	return items, nil
}

// TicketPrice returns the fare for a discount class: 30% off the base
// price for the student class, the full base price for anything else.
// There is no invalid class — unknown codes simply pay full fare.
func (s *BookingService) TicketPrice(class string) float64 {
	if class == StudentClass {
		return BaseTicketPrice * (1 - StudentDiscountPercent/100)
	}
	return BaseTicketPrice
}

// Purchase prices the booking and appends the full snapshot to the ledger
// as a single insert. Nothing is written before this point, so an aborted
// flow leaves no trace.
func (s *BookingService) Purchase(ctx context.Context, sess *Session, movie model.Movie, row, seat, class string, cart Cart) (*model.Purchase, error) {
	ticket := s.TicketPrice(class)

	p := &model.Purchase{
		UserID:       sess.UserID,
		Movie:        movie.Name,
		Showtime:     movie.Showtime,
		Row:          row,
		Seat:         seat,
		TicketPrice:  ticket,
		FoodSubtotal: cart.Subtotal,
		Total:        ticket + cart.Subtotal,
	}

	if err := s.purchases.Record(ctx, p); err != nil {
		return nil, fmt.Errorf("service/booking: recording purchase: %w", err)
	}

	s.logger.Info("purchase recorded",
		slog.String("session", sess.ID),
		slog.Int64("purchaseID", p.ID),
		slog.String("movie", p.Movie),
		slog.String("seat", p.Row+p.Seat),
		slog.Float64("total", p.Total),
	)

	return p, nil
}

// History returns the session user's purchases in the order they were
// recorded.
func (s *BookingService) History(ctx context.Context, sess *Session) ([]model.Purchase, error) {
	purchases, err := s.purchases.History(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("service/booking: loading history: %w", err)
	}
	return purchases, nil
}
