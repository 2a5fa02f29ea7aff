package doxygen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

const indexFile = "index.xml"

var (
	// ErrRecordNotFound is returned when a compound has no <refid>.xml detail record.
	ErrRecordNotFound = errors.New("compound detail record not found")
	// ErrEmptyDefinition is returned when a detail record has no compounddef element.
	ErrEmptyDefinition = errors.New("empty compound definition")
)

// MissingIndexError reports that the top-level catalog descriptor is absent.
type MissingIndexError struct {
	Path string
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("missing Doxygen index: %s", e.Path)
}

// Catalog is the set of compounds listed by index.xml, in discovery order and
// deduplicated by key. It is read-only after LoadCatalog returns.
type Catalog struct {
	dir       string
	compounds []Compound
	byKey     map[string]int
}

// LoadCatalog reads dir/index.xml.
func LoadCatalog(dir string) (*Catalog, error) {
	path := filepath.Join(dir, indexFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingIndexError{Path: path}
		}
		return nil, fmt.Errorf("checking index: %w", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: no root element", path)
	}

	cat := &Catalog{dir: dir, byKey: make(map[string]int)}
	for _, el := range root.SelectElements("compound") {
		key := el.SelectAttrValue("refid", "")
		if key == "" {
			continue
		}
		if _, dup := cat.byKey[key]; dup {
			continue
		}
		name := key
		if n := el.SelectElement("name"); n != nil {
			if text := strings.TrimSpace(n.Text()); text != "" {
				name = text
			}
		}
		cat.byKey[key] = len(cat.compounds)
		cat.compounds = append(cat.compounds, Compound{
			Key:  key,
			Kind: el.SelectAttrValue("kind", ""),
			Name: name,
		})
	}
	return cat, nil
}

// NewCatalog builds an in-memory catalog, mainly for callers that already hold the
// compound list. Definitions are still read from dir.
func NewCatalog(dir string, compounds []Compound) *Catalog {
	cat := &Catalog{dir: dir, byKey: make(map[string]int)}
	for _, c := range compounds {
		if c.Key == "" {
			continue
		}
		if _, dup := cat.byKey[c.Key]; dup {
			continue
		}
		cat.byKey[c.Key] = len(cat.compounds)
		cat.compounds = append(cat.compounds, c)
	}
	return cat
}

// Dir returns the XML directory the catalog was loaded from.
func (c *Catalog) Dir() string {
	return c.dir
}

// Compounds returns a copy of the compound list in discovery order.
func (c *Catalog) Compounds() []Compound {
	out := make([]Compound, len(c.compounds))
	copy(out, c.compounds)
	return out
}

// Lookup finds a compound by key.
func (c *Catalog) Lookup(key string) (Compound, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return Compound{}, false
	}
	return c.compounds[i], true
}

// Definition loads and parses the detail record of key. It returns
// ErrRecordNotFound or ErrEmptyDefinition for the two degraded cases; any other
// error means the record exists but could not be read.
func (c *Catalog) Definition(key string) (*CompoundDef, error) {
	path := filepath.Join(c.dir, key+".xml")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", key, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return parseCompoundDef(doc)
}
