package render

import (
	"strings"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

// Description renders block content as blank-line separated Markdown paragraphs.
// Blocks that render to nothing are dropped.
func (r *Renderer) Description(desc doxygen.Description) string {
	parts := make([]string, 0, len(desc))
	for _, blk := range desc {
		var text string
		switch blk.Kind {
		case doxygen.BlockParagraph:
			text = strings.TrimSpace(Inline(blk.Content))
		case doxygen.BlockCode:
			text = r.codeBlock(blk.Lines)
		case doxygen.BlockList:
			text = List(blk.List)
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r *Renderer) codeBlock(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " \t\r\n")
	}
	code := strings.TrimRight(strings.Join(trimmed, "\n"), " \t\r\n")
	if code == "" {
		return ""
	}
	return "```" + r.opts.CodeLanguage + "\n" + code + "\n```"
}
