package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sakif/cinebox/internal/apperror"
	"github.com/sakif/cinebox/internal/service"
)

// Menu is the nested menu controller: a top-level loop for registration,
// login and the admin catalog operations, and an inner loop for a logged-in
// customer. Dispatch is on the raw option string; unknown codes print a
// message and the same menu comes back.
//
// The only state carried across iterations is the Session value inside one
// sessionLoop call. Everything else lives in the database.
type Menu struct {
	auth     *service.AuthService
	catalog  *service.CatalogService
	bookings *service.BookingService
	prompt   *Prompter
	render   *Renderer
	logger   *slog.Logger
}

// NewMenu wires the menu controller to its services and terminal I/O.
func NewMenu(
	auth *service.AuthService,
	catalog *service.CatalogService,
	bookings *service.BookingService,
	prompt *Prompter,
	render *Renderer,
	logger *slog.Logger,
) *Menu {
	return &Menu{
		auth:     auth,
		catalog:  catalog,
		bookings: bookings,
		prompt:   prompt,
		render:   render,
		logger:   logger,
	}
}

var topOptions = []string{
	"Register",
	"Log in",
	"Add movie (admin)",
	"Add food item (admin)",
	"Remove movie (admin)",
	"Remove food item (admin)",
	"Exit",
}

var sessionOptions = []string{
	"Book a ticket",
	"Purchase history",
	"Log out",
}

// Run drives the top-level menu until the user exits or input ends.
//
// Errors that reach this loop are storage failures: they are not messages
// for the user, so Run returns them and main terminates the process. User
// mistakes (bad input, duplicates, not-found) never get this far — they
// are reported inline and the menu redisplays.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.render.ClearScreen()
		m.render.Menu("Welcome to the cinema!", topOptions)

		choice, err := m.prompt.Line("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = m.register(ctx)
		case "2":
			err = m.login(ctx)
		case "3":
			err = m.addMovie(ctx)
		case "4":
			err = m.addFood(ctx)
		case "5":
			err = m.removeMovie(ctx)
		case "6":
			err = m.removeFood(ctx)
		case "7":
			return nil
		default:
			m.render.Error("Unknown option. Try again.")
		}
		if err != nil {
			return ignoreEOF(err)
		}

		if err := m.pause(); err != nil {
			return ignoreEOF(err)
		}
	}
}

// sessionLoop is the logged-in menu. The session value is threaded into
// every call that needs the user's identity.
func (m *Menu) sessionLoop(ctx context.Context, sess *service.Session) error {
	for {
		m.render.ClearScreen()
		m.render.Menu(fmt.Sprintf("Logged in as %s", sess.Username), sessionOptions)

		choice, err := m.prompt.Line("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.runBooking(ctx, sess)
		case "2":
			err = m.showHistory(ctx, sess)
		case "3":
			m.logger.Info("user logged out",
				slog.String("session", sess.ID),
				slog.String("username", sess.Username),
			)
			return nil
		default:
			m.render.Error("Unknown option. Try again.")
		}
		if err != nil {
			return err
		}

		if err := m.pause(); err != nil {
			return err
		}
	}
}

func (m *Menu) register(ctx context.Context) error {
	username, err := m.prompt.Line("Username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt.Line("Password: ")
	if err != nil {
		return err
	}

	user, err := m.auth.Register(ctx, username, password)
	if err != nil {
		return m.report(err)
	}

	m.render.Success(fmt.Sprintf("User %s registered successfully!", user.Username))
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	username, err := m.prompt.Line("Username: ")
	if err != nil {
		return err
	}
	password, err := m.prompt.Line("Password: ")
	if err != nil {
		return err
	}

	sess, err := m.auth.Login(ctx, username, password)
	if err != nil {
		// "invalid username or password" — deliberately the same message
		// for a wrong password and an unknown user.
		return m.report(err)
	}

	return m.sessionLoop(ctx, sess)
}

func (m *Menu) addMovie(ctx context.Context) error {
	title, err := m.prompt.Line("Movie title: ")
	if err != nil {
		return err
	}
	showtime, err := m.prompt.Line("Showtime (e.g. 14:00): ")
	if err != nil {
		return err
	}

	movie, err := m.catalog.AddMovie(ctx, title, showtime)
	if err != nil {
		return m.report(err)
	}

	m.render.Success(fmt.Sprintf("Movie %q at %s added successfully!", movie.Name, movie.Showtime))
	return nil
}

func (m *Menu) addFood(ctx context.Context) error {
	name, err := m.prompt.Line("Food name: ")
	if err != nil {
		return err
	}
	price, err := m.prompt.Price("Unit price (R$): ")
	if err != nil {
		return err
	}

	item, err := m.catalog.AddFood(ctx, name, price)
	if err != nil {
		return m.report(err)
	}

	m.render.Success(fmt.Sprintf("Food item %q added successfully!", item.Name))
	return nil
}

// removeMovie shows the catalog with row ids and removes one by id.
// Unknown ids re-prompt; 0 cancels.
func (m *Menu) removeMovie(ctx context.Context) error {
	movies, err := m.catalog.ListMovies(ctx)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		m.render.Error("No movies registered.")
		return nil
	}

	lines := make([]string, len(movies))
	for i, mv := range movies {
		lines[i] = fmt.Sprintf("%d: %s - Showtime: %s", mv.ID, mv.Name, mv.Showtime)
	}
	m.render.Rows("Registered movies:", lines)

	for {
		id, err := m.prompt.ID("Movie id to remove (0 to cancel): ")
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		title, err := m.catalog.RemoveMovie(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			m.render.Error(msgInvalidChoice)
			continue
		}
		if err != nil {
			return err
		}

		m.render.Success(fmt.Sprintf("Movie %q removed successfully!", title))
		return nil
	}
}

func (m *Menu) removeFood(ctx context.Context) error {
	items, err := m.catalog.ListFood(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		m.render.Error("No food registered.")
		return nil
	}

	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d: %s - R$ %.2f", it.ID, it.Name, it.Price)
	}
	m.render.Rows("Registered food items:", lines)

	for {
		id, err := m.prompt.ID("Food id to remove (0 to cancel): ")
		if err != nil {
			return err
		}
		if id == 0 {
			return nil
		}

		name, err := m.catalog.RemoveFood(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			m.render.Error(msgInvalidChoice)
			continue
		}
		if err != nil {
			return err
		}

		m.render.Success(fmt.Sprintf("Food item %q removed successfully!", name))
		return nil
	}
}

func (m *Menu) showHistory(ctx context.Context, sess *service.Session) error {
	purchases, err := m.bookings.History(ctx, sess)
	if err != nil {
		return err
	}
	m.render.History(purchases)
	return nil
}

// report prints a user-facing error and swallows it, or passes a storage
// error upward untouched.
func (m *Menu) report(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		m.render.Error(appErr.Message)
		return nil
	}
	return err
}

// pause waits for Enter so output stays readable before the next clear.
func (m *Menu) pause() error {
	_, err := m.prompt.Line("Press Enter to continue... ")
	return err
}

// ignoreEOF turns a closed input stream into a clean exit. Anything else
// is a real failure.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
