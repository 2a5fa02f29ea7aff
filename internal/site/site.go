// Package site drives a full generation run: catalog load, output directory
// preparation, compound pages, index pages, verification and the run snapshot.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jcdickinson/doxymd/internal/doxygen"
	"github.com/jcdickinson/doxymd/internal/markdown"
	"github.com/jcdickinson/doxymd/internal/render"
	"github.com/jcdickinson/doxymd/internal/snapshot"
)

// PrepareOutputDirectory removes everything under path and recreates it empty.
func PrepareOutputDirectory(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("clearing output directory: %w", err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

type Options struct {
	Render render.Options
	// FrontMatter prepends a title front-matter block to every page.
	FrontMatter bool
	// Verify checks every written page with markdown.Check.
	Verify bool
	// SnapshotPath is where the previous run is read from and this run saved to.
	// Empty disables snapshots.
	SnapshotPath string
}

// Result summarizes a run.
type Result struct {
	Rendered     int
	Placeholders int
	Skipped      int
	// Indexes is the number of index pages written.
	Indexes  int
	Problems []markdown.Problem
	Changes  snapshot.Changes
	// FirstRun is set when no previous snapshot existed.
	FirstRun bool
}

// Written returns the number of files written.
func (r Result) Written() int {
	return r.Rendered + r.Placeholders + r.Indexes
}

type Generator struct {
	opts     Options
	renderer *render.Renderer
}

func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts, renderer: render.New(opts.Render)}
}

// Generate converts the Doxygen XML export in xmlDir into Markdown under outDir.
// outDir is wiped first. Nothing is written when the catalog cannot be loaded.
func (g *Generator) Generate(xmlDir, outDir string) (*Result, error) {
	cat, err := doxygen.LoadCatalog(xmlDir)
	if err != nil {
		return nil, err
	}
	compounds := cat.Compounds()
	slog.Debug("catalog loaded", "dir", xmlDir, "compounds", len(compounds))

	if err := PrepareOutputDirectory(outDir); err != nil {
		return nil, err
	}

	res := &Result{}
	written := snapshot.New()
	write := func(page render.Page) error {
		body := page.Body
		if g.opts.FrontMatter {
			body = markdown.AddFrontMatter(body, map[string]string{"title": page.Title})
		}
		name := page.Filename()
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(body), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written.Pages[name] = body
		return nil
	}

	for _, c := range compounds {
		page, err := g.renderer.Compound(c, cat)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", c.Key, err)
		}
		switch page.Status {
		case render.PageSkipped:
			res.Skipped++
			continue
		case render.PagePlaceholder:
			slog.Warn("writing placeholder page", "compound", c.Key, "name", c.Name, "error", page.Reason)
			res.Placeholders++
		default:
			res.Rendered++
		}
		if err := write(page); err != nil {
			return nil, err
		}
	}

	for _, page := range render.BuildIndexes(compounds).Pages() {
		if err := write(page); err != nil {
			return nil, err
		}
		res.Indexes++
	}

	if g.opts.Verify {
		problems, err := markdown.CheckDir(outDir)
		if err != nil {
			return nil, fmt.Errorf("verifying output: %w", err)
		}
		for _, p := range problems {
			slog.Warn("page check failed", "page", p.Path, "problem", p.Message)
		}
		res.Problems = problems
	}

	if g.opts.SnapshotPath != "" {
		if err := g.compare(written, res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// compare diffs this run against the stored one, logs the changes and saves
// the new snapshot. A missing snapshot counts as a first run.
func (g *Generator) compare(current *snapshot.Snapshot, res *Result) error {
	_, statErr := os.Stat(g.opts.SnapshotPath)
	res.FirstRun = os.IsNotExist(statErr)

	prev, err := snapshot.Load(g.opts.SnapshotPath)
	if err != nil {
		// An unreadable snapshot only costs the change report.
		slog.Warn("ignoring previous snapshot", "path", g.opts.SnapshotPath, "error", err)
		prev = snapshot.New()
		res.FirstRun = true
	}

	if !res.FirstRun {
		res.Changes = snapshot.Diff(prev, current)
		for _, name := range res.Changes.Added {
			slog.Info("page added", "page", name)
		}
		for _, name := range res.Changes.Removed {
			slog.Info("page removed", "page", name)
		}
		for _, name := range res.Changes.Changed {
			diff, err := snapshot.UnifiedDiff(name, prev.Pages[name], current.Pages[name])
			if err != nil {
				slog.Warn("diff failed", "page", name, "error", err)
				continue
			}
			slog.Info("page changed", "page", name)
			slog.Debug("page diff", "page", name, "diff", diff)
		}
	}

	if err := current.Save(g.opts.SnapshotPath); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
