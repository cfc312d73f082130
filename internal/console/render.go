package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/sakif/cinebox/internal/model"
)

// Styles for the terminal output. lipgloss degrades to plain text when the
// output is not a colour terminal, so tests can assert on the rendered
// strings directly.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// Renderer writes all program output except the prompt labels themselves.
type Renderer struct {
	out   io.Writer
	clear bool
}

// NewRenderer creates a Renderer. clearScreen enables the cosmetic ANSI
// clear between menus; disable it for tests and non-terminal output.
func NewRenderer(out io.Writer, clearScreen bool) *Renderer {
	return &Renderer{
		out:   out,
		clear: clearScreen,
	}
}

// ClearScreen wipes the terminal between menus. Purely cosmetic — nothing
// depends on it happening.
func (r *Renderer) ClearScreen() {
	if r.clear {
		fmt.Fprint(r.out, "\x1b[2J\x1b[H")
	}
}

// Menu prints a titled, numbered option list.
func (r *Renderer) Menu(title string, options []string) {
	fmt.Fprintln(r.out, titleStyle.Render(title))
	for i, opt := range options {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, opt)
	}
}

// List prints a header and numbered (1-based) lines, matching the indexes
// the Prompter validates against.
func (r *Renderer) List(header string, lines []string) {
	fmt.Fprintln(r.out, titleStyle.Render(header))
	for i, line := range lines {
		fmt.Fprintf(r.out, "%d. %s\n", i+1, line)
	}
}

// Rows prints a header and pre-formatted lines without numbering them.
// Used where the line already carries its own identifier (removal flows
// show database ids, not display indexes).
func (r *Renderer) Rows(header string, lines []string) {
	fmt.Fprintln(r.out, titleStyle.Render(header))
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}

// Error prints a user-facing error message.
func (r *Renderer) Error(msg string) {
	fmt.Fprintln(r.out, errorStyle.Render(msg))
}

// Success prints a confirmation message.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, successStyle.Render(msg))
}

// Info prints a neutral message.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, msg)
}

// Receipt prints the details of a just-completed purchase, including the
// per-line cart amounts. Amounts are rounded to two decimals for display
// only; the stored values keep full precision.
func (r *Renderer) Receipt(p *model.Purchase, lines []model.CartLine) {
	fmt.Fprintln(r.out, titleStyle.Render("Purchase details:"))
	fmt.Fprintf(r.out, "Movie: %s\n", p.Movie)
	fmt.Fprintf(r.out, "Showtime: %s\n", p.Showtime)
	fmt.Fprintf(r.out, "Row: %s\n", p.Row)
	fmt.Fprintf(r.out, "Seat: %s\n", p.Seat)
	fmt.Fprintf(r.out, "Ticket: R$ %.2f\n", p.TicketPrice)
	if len(lines) > 0 {
		fmt.Fprintln(r.out, "Food:")
		for _, l := range lines {
			fmt.Fprintf(r.out, "  %dx %s: R$ %.2f\n", l.Quantity, l.Name, l.Amount())
		}
	}
	fmt.Fprintf(r.out, "Total: R$ %.2f\n", p.Total)
}

// History prints the user's past purchases in the order they were made.
func (r *Renderer) History(purchases []model.Purchase) {
	if len(purchases) == 0 {
		fmt.Fprintln(r.out, faintStyle.Render("No purchases recorded."))
		return
	}
	fmt.Fprintln(r.out, titleStyle.Render("Purchase history:"))
	for _, p := range purchases {
		fmt.Fprintf(r.out, "\nMovie: %s\n", p.Movie)
		fmt.Fprintf(r.out, "Showtime: %s\n", p.Showtime)
		fmt.Fprintf(r.out, "Row: %s\n", p.Row)
		fmt.Fprintf(r.out, "Seat: %s\n", p.Seat)
		fmt.Fprintf(r.out, "Ticket: R$ %.2f\n", p.TicketPrice)
		fmt.Fprintf(r.out, "Food: R$ %.2f\n", p.FoodSubtotal)
		fmt.Fprintf(r.out, "Total: R$ %.2f\n", p.Total)
	}
}
