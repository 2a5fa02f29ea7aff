package render

import (
	"testing"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

func TestBuildIndexes_Overview(t *testing.T) {
	t.Parallel()

	ix := BuildIndexes([]doxygen.Compound{
		{Key: "n1", Kind: "namespace", Name: "mech"},
		{Key: "t1", Kind: "class", Name: "mech::Gear"},
		{Key: "t2", Kind: "struct", Name: "mech::Axle"},
		{Key: "d1", Kind: "dir", Name: "src"},
	})

	want := "# API Reference\n\n" +
		"This section is generated from Doxygen XML output and rendered inside MkDocs.\n\n" +
		"- **Namespaces:** 1\n" +
		"- **Types:** 2\n" +
		"- **Files:** 0\n\n" +
		"## Quick Index\n\n" +
		"- [Namespaces](namespaces.md)\n" +
		"- [Types](types.md)\n" +
		"- [Files](files.md)\n"
	if ix.Overview.Body != want {
		t.Errorf("overview =\n%s\nwant\n%s", ix.Overview.Body, want)
	}
	if ix.Overview.Filename() != "index.md" {
		t.Errorf("overview filename = %q", ix.Overview.Filename())
	}
}

func TestBuildIndexes_SortedAndEmpty(t *testing.T) {
	t.Parallel()

	ix := BuildIndexes([]doxygen.Compound{
		{Key: "t1", Kind: "class", Name: "mech::Gear"},
		{Key: "t2", Kind: "union", Name: "mech::Axle"},
		{Key: "t3", Kind: "concept", Name: "mech::Axle"},
	})

	wantTypes := "# Types\n\n- [mech::Axle](t2.md)\n- [mech::Axle](t3.md)\n- [mech::Gear](t1.md)\n"
	if ix.Types.Body != wantTypes {
		t.Errorf("types =\n%s\nwant\n%s", ix.Types.Body, wantTypes)
	}
	if ix.Files.Body != "# Files\n\n_None_\n" {
		t.Errorf("files = %q", ix.Files.Body)
	}
	if ix.Namespaces.Body != "# Namespaces\n\n_None_\n" {
		t.Errorf("namespaces = %q", ix.Namespaces.Body)
	}
}

func TestIndexes_PagesOrder(t *testing.T) {
	t.Parallel()

	pages := BuildIndexes(nil).Pages()
	want := []string{"index.md", "namespaces.md", "types.md", "files.md"}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages", len(pages))
	}
	for i, p := range pages {
		if p.Filename() != want[i] {
			t.Errorf("page %d = %q, want %q", i, p.Filename(), want[i])
		}
	}
}
