package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

const (
	OverviewKey   = "index"
	NamespacesKey = "namespaces"
	TypesKey      = "types"
	FilesKey      = "files"

	// EmptyIndexMarker replaces the bullet list of an empty partition.
	EmptyIndexMarker = "_None_"
)

// Indexes holds the four cross-cutting index pages.
type Indexes struct {
	Overview   Page
	Namespaces Page
	Types      Page
	Files      Page
}

// Pages returns the index pages in write order.
func (ix Indexes) Pages() []Page {
	return []Page{ix.Overview, ix.Namespaces, ix.Types, ix.Files}
}

// BuildIndexes partitions compounds by kind class and renders the overview and
// one link list per partition, each sorted by display name.
func BuildIndexes(compounds []doxygen.Compound) Indexes {
	namespaces := partition(compounds, doxygen.ClassNamespace)
	types := partition(compounds, doxygen.ClassType)
	files := partition(compounds, doxygen.ClassFile)

	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	b.WriteString("This section is generated from Doxygen XML output and rendered inside MkDocs.\n\n")
	b.WriteString(fmt.Sprintf("- **Namespaces:** %d\n", len(namespaces)))
	b.WriteString(fmt.Sprintf("- **Types:** %d\n", len(types)))
	b.WriteString(fmt.Sprintf("- **Files:** %d\n\n", len(files)))
	b.WriteString("## Quick Index\n\n")
	b.WriteString(fmt.Sprintf("- [Namespaces](%s.md)\n", NamespacesKey))
	b.WriteString(fmt.Sprintf("- [Types](%s.md)\n", TypesKey))
	b.WriteString(fmt.Sprintf("- [Files](%s.md)\n", FilesKey))

	return Indexes{
		Overview:   Page{Key: OverviewKey, Title: "API Reference", Body: b.String()},
		Namespaces: indexPage(NamespacesKey, "Namespaces", namespaces),
		Types:      indexPage(TypesKey, "Types", types),
		Files:      indexPage(FilesKey, "Files", files),
	}
}

func partition(compounds []doxygen.Compound, class doxygen.KindClass) []doxygen.Compound {
	var out []doxygen.Compound
	for _, c := range compounds {
		if c.Class() == class {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func indexPage(key, title string, items []doxygen.Compound) Page {
	list := EmptyIndexMarker
	if len(items) > 0 {
		lines := make([]string, len(items))
		for i, c := range items {
			lines[i] = fmt.Sprintf("- [%s](%s.md)", c.Name, c.Key)
		}
		list = strings.Join(lines, "\n")
	}
	return Page{
		Key:   key,
		Title: title,
		Body:  "# " + title + "\n\n" + list + "\n",
	}
}
