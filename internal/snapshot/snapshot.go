// Package snapshot stores the pages of a generation run so the next run over the
// same output directory can report what changed.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	difflib "github.com/pmezard/go-difflib/difflib"
)

// Snapshot maps output file names to their content.
type Snapshot struct {
	Pages map[string]string `json:"pages"`
}

func New() *Snapshot {
	return &Snapshot{Pages: make(map[string]string)}
}

// Save compresses the snapshot as zstd JSON to path.
func (s *Snapshot) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		w.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save. A missing file is an empty snapshot.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	r, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating zstd reader: %w", err)
	}
	defer r.Close()

	s := New()
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	if s.Pages == nil {
		s.Pages = make(map[string]string)
	}
	return s, nil
}

// Changes lists page names that differ between two snapshots, each sorted.
type Changes struct {
	Added   []string
	Removed []string
	Changed []string
}

func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Diff compares prev to next.
func Diff(prev, next *Snapshot) Changes {
	var c Changes
	for name, content := range next.Pages {
		old, ok := prev.Pages[name]
		switch {
		case !ok:
			c.Added = append(c.Added, name)
		case old != content:
			c.Changed = append(c.Changed, name)
		}
	}
	for name := range prev.Pages {
		if _, ok := next.Pages[name]; !ok {
			c.Removed = append(c.Removed, name)
		}
	}
	sort.Strings(c.Added)
	sort.Strings(c.Removed)
	sort.Strings(c.Changed)
	return c
}

// UnifiedDiff renders a unified diff between two versions of a page. It
// returns "" when they are equal.
func UnifiedDiff(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	u := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", name, err)
	}
	return strings.TrimRight(s, "\n"), nil
}
