package model

// Purchase is one completed transaction in the ledger.
//
// SNAPSHOT, NOT REFERENCE:
// Movie, Showtime and the price fields are copied at purchase time instead
// of pointing at catalog rows. Removing a movie or food item later must not
// rewrite anyone's purchase history, so the ledger keeps its own copy of
// everything it needs to display a receipt.
//
// Row and Seat are labels only ("A", "3"). There is no seat map and no
// collision check — two purchases may name the same seat for the same
// showtime.
type Purchase struct {
	ID           int64
	UserID       int64
	Movie        string
	Showtime     string
	Row          string
	Seat         string
	TicketPrice  float64
	FoodSubtotal float64
	Total        float64
}

// CartLine is one food selection inside a booking in progress.
// Lines live only in memory; the ledger stores the accumulated subtotal.
type CartLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// Amount returns the line total (quantity × unit price).
func (l CartLine) Amount() float64 {
	return float64(l.Quantity) * l.UnitPrice
}
