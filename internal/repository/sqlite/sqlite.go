// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// The whole application is one process talking to one database file on the
// local disk. SQLite is an embedded database — no server to install or
// manage, and ":memory:" gives the tests a throwaway database per test.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation of
// the SQLite sources — works everywhere Go works.
//
// CONNECTION MODEL:
// One *sql.DB pool is opened at startup and shared by every store method;
// each call threads a context through QueryContext/ExecContext. The pool is
// closed once, in main, on the way out. (The pre-redesign behaviour of
// opening and closing a connection around every single statement is gone —
// the pool gives the same per-call commit semantics without the churn.)
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Side-effect import: the driver registers itself with database/sql
	// under the name "sqlite".
	_ "modernc.org/sqlite"

	"github.com/sakif/cinebox/internal/model"
)

// DB wraps the sql.DB connection pool and implements every repository
// interface (users, catalog, purchases) on the same value. The schema is
// small enough that splitting it into one type per table would only add
// wiring.
type DB struct {
	conn *sql.DB
}

// New opens the database, verifies the connection, applies pragmas and
// creates the schema.
//
// dbPath examples:
//   - "data/cinema.db" → file-based, persistent
//   - ":memory:"       → in-memory, lost on close (tests)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// One connection is all a single interactive session needs, and it
	// keeps ":memory:" databases coherent — with a bigger pool each pool
	// connection would get its own empty in-memory database.
	conn.SetMaxOpenConns(1)

	// sql.Open doesn't actually connect; Ping surfaces a bad path or
	// permission problem here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL keeps readers unblocked during writes. Irrelevant for a single
	// interactive session, but it also makes crashes much kinder to the file.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. purchases.user_id
	// references users(id), so turn enforcement on.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Defer it right after New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the four tables. CREATE TABLE IF NOT EXISTS makes this
// safe to run unconditionally on every startup; there is no migrations
// system beyond it. The "row" column is quoted everywhere — ROW is a
// SQLite keyword.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			username        TEXT NOT NULL UNIQUE,
			password_digest TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS movies (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			name     TEXT NOT NULL,
			showtime TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS food (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL,
			price REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS purchases (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id       INTEGER REFERENCES users(id),
			movie         TEXT NOT NULL,
			showtime      TEXT NOT NULL,
			"row"         TEXT NOT NULL,
			seat          TEXT NOT NULL,
			ticket_price  REAL NOT NULL,
			food_subtotal REAL NOT NULL,
			total         REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_purchases_user_id ON purchases(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// defaultFood is the concession list seeded on first run.
var defaultFood = []model.FoodItem{
	{Name: "Refrigerante", Price: 7.0},
	{Name: "Pipoca Doce", Price: 10.0},
	{Name: "Pipoca Salgada", Price: 10.0},
	{Name: "Chocolate", Price: 5.0},
	{Name: "Bala", Price: 3.0},
}

// SeedDefaultFood inserts the default concession items. Each item is
// checked by exact name and skipped individually if already present, so
// running this on every startup leaves exactly one row per default item —
// even though the food table itself has no uniqueness constraint.
func (db *DB) SeedDefaultFood(ctx context.Context) error {
	for _, item := range defaultFood {
		var count int
		err := db.conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM food WHERE name = ?`, item.Name,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("sqlite: checking seeded food %q: %w", item.Name, err)
		}
		if count > 0 {
			continue // already seeded
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO food (name, price) VALUES (?, ?)`,
			item.Name, item.Price,
		); err != nil {
			return fmt.Errorf("sqlite: seeding food %q: %w", item.Name, err)
		}
	}
	return nil
}
