package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jcdickinson/doxymd/internal/doxygen"
)

type fakeCatalog struct {
	compounds map[string]doxygen.Compound
	defs      map[string]*doxygen.CompoundDef
	errs      map[string]error
}

func (f fakeCatalog) Lookup(key string) (doxygen.Compound, bool) {
	c, ok := f.compounds[key]
	return c, ok
}

func (f fakeCatalog) Definition(key string) (*doxygen.CompoundDef, error) {
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	def, ok := f.defs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, doxygen.ErrRecordNotFound)
	}
	return def, nil
}

func gearCatalog() fakeCatalog {
	return fakeCatalog{
		compounds: map[string]doxygen.Compound{
			"n1": {Key: "n1", Kind: "namespace", Name: "mech"},
			"t1": {Key: "t1", Kind: "class", Name: "mech::Gear"},
			"d1": {Key: "d1", Kind: "dir", Name: "src"},
		},
		defs: map[string]*doxygen.CompoundDef{
			"n1": {
				Kind:  "namespace",
				Brief: doxygen.Description{para(text("Mechanics."))},
				Inner: []doxygen.InnerRef{
					{Kind: doxygen.InnerNamespace, RefID: "n2", Name: "mech::detail"},
					{Kind: doxygen.InnerType, RefID: "t1", Name: "mech::Gear"},
				},
			},
			"t1": {
				Kind:  "class",
				Brief: doxygen.Description{para(text("A gear."))},
				Sections: []doxygen.Section{
					{Kind: "public-func", Members: []doxygen.Member{{
						Kind:       "function",
						Name:       "Spin",
						Definition: "void mech::Gear::Spin",
						ArgsString: "()",
					}}},
					{Kind: "private-attrib", Members: []doxygen.Member{{Kind: "variable"}}},
				},
			},
		},
	}
}

func TestCompound_RendersTypePage(t *testing.T) {
	t.Parallel()

	cat := gearCatalog()
	c, _ := cat.Lookup("t1")
	page, err := New(Options{}).Compound(c, cat)
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}
	if page.Status != PageRendered {
		t.Fatalf("status = %v, want rendered", page.Status)
	}

	want := "# mech::Gear\n\n" +
		"A gear.\n\n" +
		"## Public Functions\n\n" +
		"<div class=\"snapi-api-card\" markdown=\"1\">\n" +
		"### `void mech::Gear::Spin()`\n" +
		"</div>\n"
	if page.Body != want {
		t.Errorf("body =\n%s\nwant\n%s", page.Body, want)
	}
	if page.Filename() != "t1.md" {
		t.Errorf("Filename() = %q", page.Filename())
	}
}

func TestCompound_ContentsLinksKnownTargets(t *testing.T) {
	t.Parallel()

	cat := gearCatalog()
	c, _ := cat.Lookup("n1")
	page, err := New(Options{}).Compound(c, cat)
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}

	want := "## Contents\n\n" +
		"- **Namespace:** mech::detail\n" +
		"- **Type:** [mech::Gear](t1.md)\n"
	if !strings.HasSuffix(page.Body, want) {
		t.Errorf("body =\n%s\nwant suffix\n%s", page.Body, want)
	}
}

func TestCompound_FileTitle(t *testing.T) {
	t.Parallel()

	cat := fakeCatalog{defs: map[string]*doxygen.CompoundDef{"f1": {Kind: "file"}}}
	page, err := New(Options{}).Compound(doxygen.Compound{Key: "f1", Kind: "file", Name: "gear.h"}, cat)
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}
	if page.Body != "# File `gear.h`\n" {
		t.Errorf("body = %q", page.Body)
	}
}

func TestCompound_Placeholders(t *testing.T) {
	t.Parallel()

	cat := fakeCatalog{errs: map[string]error{
		"e1": fmt.Errorf("e1: %w", doxygen.ErrEmptyDefinition),
	}}
	r := New(Options{})

	missing, err := r.Compound(doxygen.Compound{Key: "x9", Kind: "struct", Name: "Ghost"}, cat)
	if err != nil {
		t.Fatalf("Compound(missing): %v", err)
	}
	if missing.Status != PagePlaceholder || !errors.Is(missing.Reason, doxygen.ErrRecordNotFound) {
		t.Errorf("missing: status %v reason %v", missing.Status, missing.Reason)
	}
	if want := "# Ghost\n\n_Unable to locate XML for x9._\n"; missing.Body != want {
		t.Errorf("missing body = %q, want %q", missing.Body, want)
	}

	empty, err := r.Compound(doxygen.Compound{Key: "e1", Kind: "file", Name: "empty.h"}, cat)
	if err != nil {
		t.Fatalf("Compound(empty): %v", err)
	}
	if want := "# empty.h\n\n_Empty compound definition._\n"; empty.Body != want {
		t.Errorf("empty body = %q, want %q", empty.Body, want)
	}
}

func TestCompound_SkipsOtherKinds(t *testing.T) {
	t.Parallel()

	cat := gearCatalog()
	c, _ := cat.Lookup("d1")
	page, err := New(Options{}).Compound(c, cat)
	if err != nil {
		t.Fatalf("Compound: %v", err)
	}
	if page.Status != PageSkipped || page.Body != "" {
		t.Errorf("status %v body %q, want skipped and empty", page.Status, page.Body)
	}
}

func TestCompound_PropagatesOtherErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad xml")
	cat := fakeCatalog{errs: map[string]error{"t1": boom}}
	_, err := New(Options{}).Compound(doxygen.Compound{Key: "t1", Kind: "class", Name: "Gear"}, cat)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestPageStatus_String(t *testing.T) {
	t.Parallel()

	if PagePlaceholder.String() != "placeholder" {
		t.Errorf("String() = %q", PagePlaceholder.String())
	}
	if got := PageStatus(9).String(); got != "PageStatus(9)" {
		t.Errorf("String() = %q", got)
	}
}
