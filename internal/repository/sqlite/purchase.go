package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/cinebox/internal/model"
	"github.com/sakif/cinebox/internal/repository"
)

// compile-time check that *DB implements repository.PurchaseRepository
var _ repository.PurchaseRepository = (*DB)(nil)

// Record appends one purchase to the ledger and fills in purchase.ID.
// The row is a snapshot — movie title, showtime and all prices are copied
// in, never joined back to the catalog tables. Rows are never updated or
// deleted afterwards.
func (db *DB) Record(ctx context.Context, purchase *model.Purchase) error {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO purchases
		   (user_id, movie, showtime, "row", seat, ticket_price, food_subtotal, total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		purchase.UserID,
		purchase.Movie,
		purchase.Showtime,
		purchase.Row,
		purchase.Seat,
		purchase.TicketPrice,
		purchase.FoodSubtotal,
		purchase.Total,
	)
	if err != nil {
		return fmt.Errorf("sqlite: recording purchase for user %d: %w", purchase.UserID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new purchase id: %w", err)
	}
	purchase.ID = id

	return nil
}

// History returns the user's purchases in insertion (id) order. A user with
// no purchases gets an empty slice, not an error.
func (db *DB) History(ctx context.Context, userID int64) ([]model.Purchase, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, movie, showtime, "row", seat, ticket_price, food_subtotal, total
		 FROM purchases WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing purchases for user %d: %w", userID, err)
	}
	defer rows.Close()

	purchases := []model.Purchase{}
	for rows.Next() {
		var p model.Purchase
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Movie,
			&p.Showtime,
			&p.Row,
			&p.Seat,
			&p.TicketPrice,
			&p.FoodSubtotal,
			&p.Total,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating purchases: %w", err)
	}

	return purchases, nil
}
