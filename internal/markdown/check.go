// Package markdown inspects generated pages: optional front matter and a
// structural check built on the gomarkdown AST.
package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// Problem is one structural defect found in a page.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}
	return p.Path + ": " + p.Message
}

// Check parses src and reports structural problems: the page must open with a
// level-1 heading, have no other level-1 heading, no empty headings, and end in
// exactly one newline. Front matter is ignored.
func Check(src string) []Problem {
	body := StripFrontMatter(src)

	var problems []Problem
	report := func(format string, args ...any) {
		problems = append(problems, Problem{Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case body == "":
		report("page is empty")
		return problems
	case !strings.HasSuffix(body, "\n"):
		report("missing trailing newline")
	case strings.HasSuffix(body, "\n\n"):
		report("more than one trailing newline")
	}

	doc := gm.Parse([]byte(body), gmparser.NewWithExtensions(gmparser.CommonExtensions))

	blocks := doc.GetChildren()
	if len(blocks) == 0 {
		report("page has no content")
		return problems
	}
	if h, ok := blocks[0].(*ast.Heading); !ok || h.Level != 1 {
		report("page does not start with a level-1 heading")
	}

	titles := 0
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		h, ok := node.(*ast.Heading)
		if !ok || !entering {
			return ast.GoToNext
		}
		text := HeadingText(h)
		if text == "" {
			report("empty level-%d heading", h.Level)
		}
		if h.Level == 1 {
			titles++
			if titles > 1 {
				report("extra level-1 heading %q", text)
			}
		}
		return ast.SkipChildren
	})

	return problems
}

// HeadingText returns the plain text of a heading, code spans included.
func HeadingText(h *ast.Heading) string {
	var b strings.Builder
	ast.WalkFunc(h, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Literal)
		case *ast.Code:
			b.Write(n.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}

// Title returns the text of the first level-1 heading of src, or "".
func Title(src string) string {
	doc := gm.Parse([]byte(StripFrontMatter(src)), gmparser.NewWithExtensions(gmparser.CommonExtensions))
	var title string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if h, ok := node.(*ast.Heading); ok && entering && h.Level == 1 {
			title = HeadingText(h)
			return ast.Terminate
		}
		return ast.GoToNext
	})
	return title
}

// CheckFile runs Check over the file at path.
func CheckFile(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	problems := Check(string(data))
	for i := range problems {
		problems[i].Path = path
	}
	return problems, nil
}

// CheckDir checks every .md file directly inside dir, in name order.
func CheckDir(dir string) ([]Problem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var problems []Problem
	for _, name := range names {
		p, err := CheckFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		problems = append(problems, p...)
	}
	return problems, nil
}
