// Package console is the terminal surface of the application. It plays the
// role an HTTP handler layer would in a networked app: translate user input
// into service calls and service results (or errors) into output. No
// business rule lives here.
//
// The protocol is strictly line-based — one printed prompt, one line of
// input, repeated. Input comes from an injected io.Reader, so every flow in
// this package is testable with a scripted strings.Reader instead of a live
// terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Messages printed by the retry loops. Kept in one place so tests can
// assert on them.
const (
	msgNotANumber    = "Invalid input. Please enter a number."
	msgInvalidChoice = "Invalid choice. Try again."
)

// Prompter reads validated values from the input stream.
//
// Invalid input (non-numeric, out of range) prints a message and re-prompts
// with no retry cap. The only way out of a retry loop without a valid value
// is the input stream ending, which surfaces as io.EOF and aborts the
// calling flow.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading from in and echoing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Line prints the label and reads one line, trimmed of surrounding
// whitespace. Returns io.EOF when the input stream is closed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("console: reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Index reads a 1-based choice in 1..max, re-prompting until valid.
func (p *Prompter) Index(label string, max int) (int, error) {
	return p.intInRange(label, 1, max)
}

// IndexOrZero reads a choice in 0..max, where 0 means cancel or finish.
func (p *Prompter) IndexOrZero(label string, max int) (int, error) {
	return p.intInRange(label, 0, max)
}

// PositiveInt reads an integer ≥ 1 (quantities), re-prompting until valid.
func (p *Prompter) PositiveInt(label string) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, msgNotANumber)
			continue
		}
		if n < 1 {
			fmt.Fprintln(p.out, msgInvalidChoice)
			continue
		}
		return n, nil
	}
}

// ID reads a non-negative row id, re-prompting on non-numeric input.
// 0 is the conventional cancel value in removal flows.
func (p *Prompter) ID(label string) (int64, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil || n < 0 {
			fmt.Fprintln(p.out, msgNotANumber)
			continue
		}
		return n, nil
	}
}

// Price reads a non-negative currency amount, re-prompting until valid.
func (p *Prompter) Price(label string) (float64, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(p.out, msgNotANumber)
			continue
		}
		if v < 0 {
			fmt.Fprintln(p.out, msgInvalidChoice)
			continue
		}
		return v, nil
	}
}

func (p *Prompter) intInRange(label string, min, max int) (int, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, msgNotANumber)
			continue
		}
		if n < min || n > max {
			fmt.Fprintln(p.out, msgInvalidChoice)
			continue
		}
		return n, nil
	}
}
