package doxygen

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

func parseCompoundDef(doc *etree.Document) (*CompoundDef, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrEmptyDefinition
	}
	el := root.SelectElement("compounddef")
	if el == nil {
		return nil, fmt.Errorf("%s: %w", root.Tag, ErrEmptyDefinition)
	}

	def := &CompoundDef{
		Kind:     el.SelectAttrValue("kind", ""),
		Brief:    parseDescription(el.SelectElement("briefdescription")),
		Detailed: parseDescription(el.SelectElement("detaileddescription")),
	}

	for _, inner := range []struct {
		tag  string
		kind InnerKind
	}{
		{"innernamespace", InnerNamespace},
		{"innerclass", InnerType},
	} {
		for _, ref := range el.SelectElements(inner.tag) {
			name := strings.TrimSpace(ref.Text())
			if name == "" {
				continue
			}
			def.Inner = append(def.Inner, InnerRef{
				Kind:  inner.kind,
				RefID: ref.SelectAttrValue("refid", ""),
				Name:  name,
			})
		}
	}

	for _, sec := range el.SelectElements("sectiondef") {
		section := Section{Kind: sec.SelectAttrValue("kind", "")}
		for _, m := range sec.SelectElements("memberdef") {
			section.Members = append(section.Members, parseMember(m))
		}
		def.Sections = append(def.Sections, section)
	}
	return def, nil
}

func parseMember(el *etree.Element) Member {
	detail := el.SelectElement("detaileddescription")
	m := Member{
		Kind:       el.SelectAttrValue("kind", ""),
		ID:         el.SelectAttrValue("id", ""),
		Name:       childText(el, "name"),
		Definition: childText(el, "definition"),
		ArgsString: childText(el, "argsstring"),
		Brief:      parseDescription(el.SelectElement("briefdescription")),
		Detailed:   parseDescription(detail),
	}

	for _, p := range el.SelectElements("param") {
		name := childText(p, "declname")
		if name == "" {
			name = childText(p, "defname")
		}
		if name != "" {
			m.Params = append(m.Params, name)
		}
	}

	for _, v := range el.SelectElements("enumvalue") {
		m.EnumValues = append(m.EnumValues, EnumValue{
			Name:  childText(v, "name"),
			Brief: parseDescription(v.SelectElement("briefdescription")),
		})
	}

	if detail == nil {
		return m
	}

	// A later parameteritem documenting an already seen name replaces it.
	for _, item := range detail.FindElements(".//parameterlist[@kind='param']/parameteritem") {
		desc := parseDescription(item.SelectElement("parameterdescription"))
		for _, n := range item.FindElements("./parameternamelist/parametername") {
			name := strings.TrimSpace(flattenText(n))
			if name == "" {
				continue
			}
			if m.ParamDocs == nil {
				m.ParamDocs = make(map[string]Description)
			}
			m.ParamDocs[name] = desc
		}
	}

	if ret := detail.FindElement(".//simplesect[@kind='return']"); ret != nil {
		m.Returns = parseDescription(ret)
	}
	for _, note := range detail.FindElements(".//simplesect[@kind='note']") {
		m.Notes = append(m.Notes, parseDescription(note))
	}
	return m
}

// childText returns the trimmed text content of the first child named tag.
func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(flattenText(child))
}

// flattenText concatenates all character data below el in document order. Doxygen
// encodes spaces inside code lines as <sp/>.
func flattenText(el *etree.Element) string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				if t.Tag == "sp" {
					b.WriteByte(' ')
					continue
				}
				walk(t)
			}
		}
	}
	walk(el)
	return b.String()
}
