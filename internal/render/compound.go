package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

// PageStatus tells how a page came to be.
type PageStatus int

const (
	// PageRendered is a full page built from the compound's detail record.
	PageRendered PageStatus = iota
	// PagePlaceholder is a title plus notice, written when the detail record is
	// missing or empty.
	PagePlaceholder
	// PageSkipped means the compound kind does not get a page. Body is empty.
	PageSkipped
)

func (s PageStatus) String() string {
	switch s {
	case PageRendered:
		return "rendered"
	case PagePlaceholder:
		return "placeholder"
	case PageSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("PageStatus(%d)", int(s))
	}
}

// Page is a rendered Markdown document.
type Page struct {
	Key    string
	Title  string
	Body   string
	Status PageStatus
	// Reason is the degraded-path error for placeholders.
	Reason error
}

// Filename returns the flat output file name for the page.
func (p Page) Filename() string {
	return p.Key + ".md"
}

// Catalog is what compound rendering needs from the loaded catalog.
type Catalog interface {
	Lookup(key string) (doxygen.Compound, bool)
	Definition(key string) (*doxygen.CompoundDef, error)
}

// Renderable reports whether c gets its own page.
func Renderable(c doxygen.Compound) bool {
	return c.Class() != doxygen.ClassOther
}

// Title returns the page title of c.
func Title(c doxygen.Compound) string {
	if c.Class() == doxygen.ClassFile {
		return fmt.Sprintf("File `%s`", c.Name)
	}
	return c.Name
}

// Compound renders the page for c. A missing or empty detail record yields a
// placeholder page rather than an error; other load errors are returned.
func (r *Renderer) Compound(c doxygen.Compound, cat Catalog) (Page, error) {
	page := Page{Key: c.Key, Title: Title(c)}
	if !Renderable(c) {
		page.Status = PageSkipped
		return page, nil
	}

	def, err := cat.Definition(c.Key)
	switch {
	case errors.Is(err, doxygen.ErrRecordNotFound):
		page.Status = PagePlaceholder
		page.Reason = err
		page.Body = fmt.Sprintf("# %s\n\n_Unable to locate XML for %s._\n", c.Name, c.Key)
		return page, nil
	case errors.Is(err, doxygen.ErrEmptyDefinition):
		page.Status = PagePlaceholder
		page.Reason = err
		page.Body = fmt.Sprintf("# %s\n\n_Empty compound definition._\n", c.Name)
		return page, nil
	case err != nil:
		return Page{}, fmt.Errorf("loading %s: %w", c.Key, err)
	}

	var contents string
	if inner := r.contents(def.Inner, cat); inner != "" {
		contents = "## Contents\n\n" + inner
	}

	body := joinBlocks(
		"# "+page.Title,
		r.Description(def.Brief),
		r.Description(def.Detailed),
		contents,
		r.sections(def.Sections),
	)
	page.Body = strings.TrimSpace(body) + "\n"
	page.Status = PageRendered
	return page, nil
}

var innerLabels = map[doxygen.InnerKind]string{
	doxygen.InnerNamespace: "Namespace",
	doxygen.InnerType:      "Type",
}

// contents lists nested compounds. Entries link to the nested page when the
// catalog knows it and it is rendered.
func (r *Renderer) contents(refs []doxygen.InnerRef, cat Catalog) string {
	lines := make([]string, 0, len(refs))
	for _, ref := range refs {
		label := ref.Name
		if target, ok := cat.Lookup(ref.RefID); ok && Renderable(target) {
			label = fmt.Sprintf("[%s](%s.md)", ref.Name, target.Key)
		}
		lines = append(lines, fmt.Sprintf("- **%s:** %s", innerLabels[ref.Kind], label))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) sections(sections []doxygen.Section) string {
	var out []string
	for _, sec := range sections {
		var cards []string
		for _, m := range sec.Members {
			if card := r.Member(m); card != "" {
				cards = append(cards, card)
			}
		}
		if len(cards) == 0 {
			continue
		}
		out = append(out, "## "+SectionTitle(sec.Kind)+"\n\n"+strings.Join(cards, "\n"))
	}
	return strings.Join(out, "\n\n")
}
