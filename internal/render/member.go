package render

import (
	"fmt"
	"strings"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

type cardRenderer func(r *Renderer, m doxygen.Member) string

// cardRenderers selects the card layout by member kind. Kinds not listed use
// memberCard.
var cardRenderers = map[string]cardRenderer{
	"enum": (*Renderer).enumCard,
}

// Member renders one member as a card wrapped for the site theme. It returns ""
// when the member has nothing to show.
func (r *Renderer) Member(m doxygen.Member) string {
	render, ok := cardRenderers[m.Kind]
	if !ok {
		render = (*Renderer).memberCard
	}
	return r.wrapCard(render(r, m))
}

// Signature returns the heading text for a member: definition plus argument list,
// else the definition, else the bare name.
func Signature(m doxygen.Member) string {
	switch {
	case m.Definition != "" && m.ArgsString != "":
		return m.Definition + m.ArgsString
	case m.Definition != "":
		return m.Definition
	default:
		return m.Name
	}
}

func (r *Renderer) wrapCard(content string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	return fmt.Sprintf("<div class=\"%s\" markdown=\"1\">\n%s\n</div>", r.opts.CardClass, content)
}

func (r *Renderer) enumCard(m doxygen.Member) string {
	var values []string
	for _, v := range m.EnumValues {
		if v.Name == "" {
			continue
		}
		if brief := r.Description(v.Brief); brief != "" {
			values = append(values, fmt.Sprintf("- `%s`: %s", v.Name, brief))
		} else {
			values = append(values, fmt.Sprintf("- `%s`", v.Name))
		}
	}

	var valuesBlock string
	if len(values) > 0 {
		valuesBlock = "**Values**\n\n" + strings.Join(values, "\n")
	}

	return joinBlocks(
		fmt.Sprintf("### `enum %s`", m.Name),
		r.Description(m.Brief),
		r.Description(m.Detailed),
		valuesBlock,
	)
}

func (r *Renderer) memberCard(m doxygen.Member) string {
	sig := Signature(m)
	if sig == "" {
		return ""
	}

	var params string
	if len(m.Params) > 0 {
		lines := make([]string, 0, len(m.Params))
		for _, name := range m.Params {
			if desc := r.Description(m.ParamDocs[name]); desc != "" {
				lines = append(lines, fmt.Sprintf("- `%s`: %s", name, desc))
			} else {
				lines = append(lines, fmt.Sprintf("- `%s`", name))
			}
		}
		params = "**Parameters**\n\n" + strings.Join(lines, "\n")
	}

	var returns string
	if text := r.Description(m.Returns); text != "" {
		returns = "**Returns:** " + text
	}

	var notes []string
	for _, note := range m.Notes {
		if text := r.Description(note); text != "" {
			notes = append(notes, "- "+text)
		}
	}
	var notesBlock string
	if len(notes) > 0 {
		notesBlock = "**Notes**\n\n" + strings.Join(notes, "\n")
	}

	return joinBlocks(
		fmt.Sprintf("### `%s`", sig),
		r.Description(m.Brief),
		r.Description(m.Detailed),
		params,
		returns,
		notesBlock,
	)
}
