package teller

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// Store performs all file access for the three record collections. One
// collection per flat file; whole-file rewrite for customers and
// accounts, append-only for transactions.
//
// Reads tolerate hand-edited files: a line that fails validation is
// simply skipped by callers, never an error. Only the inability to
// create or open a file is fatal (ErrStorageUnavailable).
type Store struct {
	cfg Config
}

// NewStore prepares file access under cfg. In non-destructive mode it
// copies each existing file to its shadow first, so every later
// operation touches only the copies.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{cfg: cfg}
	if cfg.NonDestructive {
		for _, p := range cfg.paths() {
			if err := copyShadow(p); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// active maps a configured path to the file actually used, resolving the
// shadow copy in non-destructive mode.
func (s *Store) active(path string) string {
	if s.cfg.NonDestructive {
		return path + shadowSuffix
	}
	return path
}

// copyShadow duplicates path into its shadow file. A missing original is
// fine: fresh ledgers start empty, and LoadAll will create the shadow.
func copyShadow(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %q: %v", ErrStorageUnavailable, path, err)
	}
	if err := os.WriteFile(path+shadowSuffix, data, 0644); err != nil {
		return fmt.Errorf("%w: creating shadow for %q: %v", ErrStorageUnavailable, path, err)
	}
	return nil
}

// RemoveShadows deletes the shadow copies on clean exit. It is a no-op
// outside non-destructive mode.
func (s *Store) RemoveShadows() error {
	if !s.cfg.NonDestructive {
		return nil
	}
	for _, p := range s.cfg.paths() {
		if err := os.Remove(p + shadowSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing shadow %q: %w", p+shadowSuffix, err)
		}
	}
	return nil
}

// LoadAll returns every raw line of the file, creating it empty when
// absent. A missing file is not an error: it is an empty ledger. Any
// other open failure is fatal for the store.
func (s *Store) LoadAll(path string) ([]string, error) {
	p := s.active(path)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		// Single ensure-then-read sequence, no retry loop: create the
		// empty file and report an empty collection.
		f, cerr := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0644)
		if cerr != nil {
			return nil, fmt.Errorf("%w: creating %q: %v", ErrStorageUnavailable, p, cerr)
		}
		f.Close()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrStorageUnavailable, p, err)
	}
	lines := strings.Split(string(data), "\n")
	// A trailing newline produces one empty trailing element, which is
	// not a record line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// RewriteAll replaces the file's whole contents with the given lines.
// The write goes to a temporary file renamed over the original, so a
// reader never observes a partial rewrite.
func (s *Store) RewriteAll(path string, lines []string) error {
	p := s.active(path)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrStorageUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("%w: replacing %q: %v", ErrStorageUnavailable, p, err)
	}
	return nil
}

// Append adds one line at the end of the file, creating it if needed.
// Used only for the append-only transaction log.
func (s *Store) Append(path, line string) error {
	p := s.active(path)
	f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %v", ErrStorageUnavailable, p, err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("%w: appending to %q: %v", ErrStorageUnavailable, p, err)
	}
	return nil
}

// DeleteByID removes the first valid line of the given kind whose
// leading id field equals id, then rewrites the file. Every other line,
// including comments and invalid ones, is kept byte-identical. Duplicate
// ids are a data-corruption case outside the store's responsibility:
// only the first match goes.
func (s *Store) DeleteByID(path string, kind Kind, id int) error {
	lines, err := s.LoadAll(path)
	if err != nil {
		return err
	}
	for i, line := range lines {
		if !ValidLine(kind, line) {
			continue
		}
		if lineID, ok := LeadingID(line); ok && lineID == id {
			return s.RewriteAll(path, slices.Delete(lines, i, i+1))
		}
	}
	// Nothing matched; leave the file as is.
	return nil
}
