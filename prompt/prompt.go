// Package prompt collects typed values from a console user with a
// uniform result contract. Every prompt reads whole lines, accepts "c"
// to cancel, and re-asks on invalid input up to a retry budget, so the
// callers only ever branch on the final Result state.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/rvallee/teller"
)

// State is the outcome of one prompt.
type State int

const (
	// Succeeded means the user entered a valid value.
	Succeeded State = iota
	// Cancelled means the user typed the cancel token.
	Cancelled
	// InvalidChoice means the retry budget ran out on invalid input.
	InvalidChoice
	// Failed means input could not be read at all (EOF, I/O error).
	Failed
)

func (s State) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Cancelled:
		return "cancelled"
	case InvalidChoice:
		return "invalid choice"
	default:
		return "failed"
	}
}

// Result is the outcome of one prompt; Value is meaningful only when
// State is Succeeded.
type Result[T any] struct {
	State State
	Value T
}

// Ok reports whether the prompt succeeded.
func (r Result[T]) Ok() bool { return r.State == Succeeded }

func succeeded[T any](v T) Result[T] { return Result[T]{State: Succeeded, Value: v} }
func failed[T any](s State) Result[T] {
	var zero T
	return Result[T]{State: s, Value: zero}
}

// cancelToken aborts any prompt.
const cancelToken = "c"

// defaultRetries is how many invalid answers a prompt tolerates before
// giving up with InvalidChoice.
const defaultRetries = 3

// Prompter reads typed values from r, writing labels and hints to w.
// It never interprets input beyond single lines, so it works the same
// over a pipe, a test script, or an interactive terminal.
type Prompter struct {
	w io.Writer
	r *bufio.Reader

	// Retries is the number of invalid answers tolerated per prompt.
	Retries int

	// file is set when reading from an actual terminal; it enables
	// masked password input.
	file *os.File
}

// New returns a Prompter over the given streams.
func New(w io.Writer, r io.Reader) *Prompter {
	p := &Prompter{w: w, r: bufio.NewReader(r), Retries: defaultRetries}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.file = f
	}
	return p
}

// line prints the label and reads one trimmed line. The cancel token
// and read failures short-circuit every prompt the same way.
func (p *Prompter) line(label string) (string, State) {
	fmt.Fprintf(p.w, "%s (or %q to cancel): ", label, cancelToken)
	s, err := p.r.ReadString('\n')
	if err != nil && s == "" {
		return "", Failed
	}
	s = strings.TrimSpace(s)
	if s == cancelToken {
		return "", Cancelled
	}
	return s, Succeeded
}

// ask runs the retry loop shared by all typed prompts.
func ask[T any](p *Prompter, label string, parse func(string) (T, error)) Result[T] {
	for range p.Retries {
		s, state := p.line(label)
		if state != Succeeded {
			return failed[T](state)
		}
		v, err := parse(s)
		if err != nil {
			fmt.Fprintln(p.w, err)
			continue
		}
		return succeeded(v)
	}
	return failed[T](InvalidChoice)
}

// Text asks for a name-like value: letters and spaces only, non-empty.
func (p *Prompter) Text(label string) Result[string] {
	return ask(p, label, func(s string) (string, error) {
		if clean := teller.SanitizeName(s); clean == s && clean != "" {
			return clean, nil
		}
		return "", fmt.Errorf("letters and spaces only")
	})
}

// Int asks for an integer.
func (p *Prompter) Int(label string) Result[int] {
	return ask(p, label, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		return n, nil
	})
}

// Amount asks for a positive monetary amount.
func (p *Prompter) Amount(label string) Result[teller.Amount] {
	return ask(p, label, func(s string) (teller.Amount, error) {
		a, err := teller.ParseAmount(s)
		if err != nil || !a.IsPositive() {
			return teller.Amount{}, fmt.Errorf("%q is not a positive amount", s)
		}
		return a, nil
	})
}

// Menu prints numbered options and asks for a pick; the result is the
// zero-based index into options.
func (p *Prompter) Menu(label string, options ...string) Result[int] {
	fmt.Fprintln(p.w, label)
	for i, opt := range options {
		fmt.Fprintf(p.w, "  %d. %s\n", i+1, opt)
	}
	return ask(p, "choice", func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(options) {
			return 0, fmt.Errorf("pick a number between 1 and %d", len(options))
		}
		return n - 1, nil
	})
}

// Select asks for one id out of the allowed list.
func (p *Prompter) Select(label string, ids []int) Result[int] {
	return ask(p, label, func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		for _, id := range ids {
			if id == n {
				return n, nil
			}
		}
		return 0, fmt.Errorf("%d is not one of %v", n, ids)
	})
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(label string) Result[bool] {
	return ask(p, label+" [y/n]", func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return false, fmt.Errorf("answer y or n")
	})
}

// Password asks for a storable password. On a real terminal the input
// is masked; over a pipe it degrades to a plain line read so scripted
// sessions still work.
func (p *Prompter) Password(label string) Result[string] {
	for range p.Retries {
		s, state := p.ReadSecret(label)
		if state != Succeeded {
			return failed[string](state)
		}
		if !teller.ValidPassword(s) {
			fmt.Fprintln(p.w, "password must not be empty or contain commas or quotes")
			continue
		}
		return succeeded(s)
	}
	return failed[string](InvalidChoice)
}

// ReadSecret reads one masked line when on a terminal, without the
// retry loop. It backs the login flow where a wrong password is an
// authentication failure, not an input error.
func (p *Prompter) ReadSecret(label string) (string, State) {
	if p.file == nil {
		return p.line(label)
	}
	fmt.Fprintf(p.w, "%s: ", label)
	b, err := term.ReadPassword(int(p.file.Fd()))
	fmt.Fprintln(p.w)
	if err != nil {
		return "", Failed
	}
	s := strings.TrimSpace(string(b))
	if s == cancelToken {
		return "", Cancelled
	}
	return s, Succeeded
}

// Challenge asks the user to retype a short random code. Destructive
// operations use it as a last confirmation step.
func (p *Prompter) Challenge(label string) Result[bool] {
	code := strconv.Itoa(1000 + rand.IntN(9000))
	fmt.Fprintf(p.w, "%s\n", label)
	return ask(p, fmt.Sprintf("type %s to confirm", code), func(s string) (bool, error) {
		if s != code {
			return false, fmt.Errorf("codes do not match")
		}
		return true, nil
	})
}
