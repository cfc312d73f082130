package model

// Movie is a catalog entry shown to customers when booking.
//
// Showtime is a free-form label ("14:00", "tonight 21h") rather than a
// parsed time.Time. The program never computes with it — it is displayed
// and copied verbatim into purchases.
type Movie struct {
	ID       int64
	Name     string
	Showtime string
}

// FoodItem is a concession catalog entry.
//
// There is deliberately no uniqueness on Name: admins can (and do) add
// duplicates, and removal targets a single row by id.
type FoodItem struct {
	ID    int64
	Name  string
	Price float64 // unit price, non-negative
}
