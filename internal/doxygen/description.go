package doxygen

import "github.com/beevik/etree"

// inlineKinds maps inline element tags to node kinds. Tags not listed become
// InlineSpan.
var inlineKinds = map[string]InlineKind{
	"computeroutput": InlineCode,
	"tt":             InlineCode,
	"bold":           InlineBold,
	"emphasis":       InlineEmphasis,
	"ref":            InlineRef,
	"ulink":          InlineLink,
	"linebreak":      InlineLineBreak,
	"itemizedlist":   InlineList,
	"orderedlist":    InlineList,
	"parameterlist":  InlineSuppressed,
	"simplesect":     InlineSuppressed,
}

// parseDescription converts a description-like element (briefdescription,
// detaileddescription, parameterdescription, simplesect) into blocks. Unknown
// block elements are dropped. A nil element yields a nil Description.
func parseDescription(el *etree.Element) Description {
	if el == nil {
		return nil
	}
	var desc Description
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "para":
			desc = append(desc, Block{Kind: BlockParagraph, Content: parseInline(child)})
		case "programlisting":
			var lines []string
			for _, line := range child.SelectElements("codeline") {
				lines = append(lines, flattenText(line))
			}
			desc = append(desc, Block{Kind: BlockCode, Lines: lines})
		case "itemizedlist", "orderedlist":
			desc = append(desc, Block{Kind: BlockList, List: parseList(child)})
		}
	}
	return desc
}

// parseInline converts the mixed content of el into inline nodes, keeping text
// runs and elements in document order.
func parseInline(el *etree.Element) []Inline {
	var nodes []Inline
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if t.Data != "" {
				nodes = append(nodes, Inline{Kind: InlineText, Text: t.Data})
			}
		case *etree.Element:
			nodes = append(nodes, parseInlineElement(t))
		}
	}
	return nodes
}

func parseInlineElement(el *etree.Element) Inline {
	if el.Tag == "sp" {
		return Inline{Kind: InlineText, Text: " "}
	}
	kind, ok := inlineKinds[el.Tag]
	if !ok {
		kind = InlineSpan
	}
	switch kind {
	case InlineSuppressed, InlineLineBreak:
		return Inline{Kind: kind}
	case InlineList:
		return Inline{Kind: kind, List: parseList(el)}
	case InlineLink:
		return Inline{Kind: kind, URL: el.SelectAttrValue("url", ""), Children: parseInline(el)}
	default:
		return Inline{Kind: kind, Children: parseInline(el)}
	}
}

func parseList(el *etree.Element) *List {
	list := &List{Ordered: el.Tag == "orderedlist"}
	for _, item := range el.SelectElements("listitem") {
		list.Items = append(list.Items, parseInline(item))
	}
	return list
}
