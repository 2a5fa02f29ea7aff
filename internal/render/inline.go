package render

import (
	"strconv"
	"strings"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

// Inline renders mixed prose to Markdown. Nodes are emitted strictly in slice
// order, so text following an element stays after it.
func Inline(nodes []doxygen.Inline) string {
	var b strings.Builder
	writeInline(&b, nodes)
	return b.String()
}

func writeInline(b *strings.Builder, nodes []doxygen.Inline) {
	for _, n := range nodes {
		switch n.Kind {
		case doxygen.InlineText:
			b.WriteString(n.Text)
		case doxygen.InlineCode:
			b.WriteString("`")
			writeInline(b, n.Children)
			b.WriteString("`")
		case doxygen.InlineBold:
			b.WriteString("**")
			writeInline(b, n.Children)
			b.WriteString("**")
		case doxygen.InlineEmphasis:
			b.WriteString("*")
			writeInline(b, n.Children)
			b.WriteString("*")
		case doxygen.InlineLink:
			label := Inline(n.Children)
			if n.URL == "" {
				b.WriteString(label)
				continue
			}
			b.WriteString("[" + label + "](" + n.URL + ")")
		case doxygen.InlineLineBreak:
			b.WriteString("  \n")
		case doxygen.InlineList:
			b.WriteString("\n")
			b.WriteString(List(n.List))
			b.WriteString("\n")
		case doxygen.InlineSuppressed:
			// extracted into member parameters, returns and notes
		default:
			// InlineRef and InlineSpan contribute their content only
			writeInline(b, n.Children)
		}
	}
}

// List renders one line per item: "1.", "2.", ... when ordered, "-" otherwise.
func List(l *doxygen.List) string {
	if l == nil {
		return ""
	}
	lines := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		prefix := "-"
		if l.Ordered {
			prefix = strconv.Itoa(i+1) + "."
		}
		text := strings.TrimSpace(Inline(item))
		if text == "" {
			lines = append(lines, prefix)
			continue
		}
		lines = append(lines, prefix+" "+text)
	}
	return strings.Join(lines, "\n")
}
