// Package render turns parsed Doxygen records into Markdown pages for MkDocs.
//
// Inline and List are pure functions of the description tree. Renderer adds the
// few site-dependent settings (code fence language, card CSS class) needed for
// descriptions, member cards and compound pages.
package render

import "strings"

const (
	DefaultCodeLanguage = "cpp"
	DefaultCardClass    = "snapi-api-card"
)

// Options configures a Renderer. Zero fields take the defaults.
type Options struct {
	CodeLanguage string
	CardClass    string
}

type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.CodeLanguage == "" {
		opts.CodeLanguage = DefaultCodeLanguage
	}
	if opts.CardClass == "" {
		opts.CardClass = DefaultCardClass
	}
	return &Renderer{opts: opts}
}

// joinBlocks joins the non-empty chunks with a blank line between them.
func joinBlocks(chunks ...string) string {
	var kept []string
	for _, c := range chunks {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, "\n\n")
}
