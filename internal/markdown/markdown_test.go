package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("basic", func(t *testing.T) {
		got := AddFrontMatter("# Doc\n", map[string]string{"title": "File `gear.h`"})
		want := "---\ntitle: \"File `gear.h`\"\n---\n\n# Doc\n"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("sorted_keys", func(t *testing.T) {
		got := AddFrontMatter("x", map[string]string{"z": "1", "a": "2"})
		if strings.Index(got, "a: ") > strings.Index(got, "z: ") {
			t.Errorf("keys not sorted: %q", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if got := AddFrontMatter("# Doc\n", nil); got != "# Doc\n" {
			t.Errorf("expected unchanged, got %q", got)
		}
	})
}

func TestStripFrontMatter(t *testing.T) {
	t.Parallel()

	src := "# Doc\n"
	if got := StripFrontMatter(AddFrontMatter(src, map[string]string{"title": "Doc"})); got != src {
		t.Errorf("got %q, want %q", got, src)
	}
	if got := StripFrontMatter(src); got != src {
		t.Errorf("expected unchanged, got %q", got)
	}
	unterminated := "---\ntitle: x\n# Doc\n"
	if got := StripFrontMatter(unterminated); got != unterminated {
		t.Errorf("unterminated block should be kept, got %q", got)
	}
}

func TestCheck_CleanPage(t *testing.T) {
	t.Parallel()

	src := "# File `gear.h`\n\nA gear.\n\n## Public Functions\n\n" +
		"<div class=\"snapi-api-card\" markdown=\"1\">\n### `void Spin()`\n</div>\n"
	if problems := Check(src); len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
}

func TestCheck_WithFrontMatter(t *testing.T) {
	t.Parallel()

	src := AddFrontMatter("# Gear\n", map[string]string{"title": "Gear"})
	if problems := Check(src); len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}
}

func TestCheck_Problems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no_title", "Some text.\n", "does not start with a level-1 heading"},
		{"second_level_first", "## Types\n", "does not start with a level-1 heading"},
		{"two_titles", "# One\n\n# Two\n", "extra level-1 heading \"Two\""},
		{"no_newline", "# One", "missing trailing newline"},
		{"extra_newline", "# One\n\n", "more than one trailing newline"},
		{"empty", "", "page is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := Check(tt.src)
			var found bool
			for _, p := range problems {
				if strings.Contains(p.Message, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("Check(%q) = %v, want a problem containing %q", tt.src, problems, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	if got := Title("# File `gear.h`\n\nbody\n"); got != "File gear.h" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("no heading\n"); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
}

func TestCheckDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	files := map[string]string{
		"index.md":  "# API Reference\n",
		"t1.md":     "broken\n",
		"notes.txt": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	problems, err := CheckDir(dir)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("got %d problems, want 1: %v", len(problems), problems)
	}
	if !strings.HasSuffix(problems[0].Path, "t1.md") {
		t.Errorf("problem path = %q", problems[0].Path)
	}
	if !strings.HasPrefix(problems[0].String(), problems[0].Path+": ") {
		t.Errorf("String() = %q", problems[0].String())
	}
}

func TestCheckFile_Missing(t *testing.T) {
	t.Parallel()

	if _, err := CheckFile(filepath.Join(t.TempDir(), "nope.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
