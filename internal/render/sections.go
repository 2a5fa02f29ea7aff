package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var sectionTitles = map[string]string{
	"public-func":          "Public Functions",
	"public-static-func":   "Public Static Functions",
	"public-attrib":        "Public Members",
	"public-static-attrib": "Public Static Members",
	"public-type":          "Public Types",
	"protected-func":       "Protected Functions",
	"protected-attrib":     "Protected Members",
	"protected-type":       "Protected Types",
	"private-func":         "Private Functions",
	"private-attrib":       "Private Members",
	"private-type":         "Private Types",
	"friend":               "Friends",
	"define":               "Macros",
	"func":                 "Functions",
	"var":                  "Variables",
	"typedef":              "Type Aliases",
	"enum":                 "Enumerations",
}

// SectionTitle maps a sectiondef kind to its heading. Unknown kinds are title
// cased with dashes turned into spaces ("signal-slot" -> "Signal Slot").
func SectionTitle(kind string) string {
	if title, ok := sectionTitles[kind]; ok {
		return title
	}
	title := cases.Title(language.Und).String(strings.ReplaceAll(kind, "-", " "))
	if strings.TrimSpace(title) == "" {
		return "Members"
	}
	return title
}
