package doxygen

// KindClass groups raw Doxygen compound kinds into the partitions pages are built for.
type KindClass int

const (
	ClassOther KindClass = iota
	ClassNamespace
	ClassType
	ClassFile
)

var kindClasses = map[string]KindClass{
	"namespace": ClassNamespace,
	"class":     ClassType,
	"struct":    ClassType,
	"union":     ClassType,
	"concept":   ClassType,
	"file":      ClassFile,
}

// ClassOf maps a raw compound kind ("class", "file", "dir", ...) to its KindClass.
func ClassOf(kind string) KindClass {
	return kindClasses[kind]
}

// Compound is one entry of the catalog descriptor (index.xml).
type Compound struct {
	Key  string // refid; output filename stem and link target
	Kind string // raw Doxygen kind
	Name string
}

// Class returns the partition the compound belongs to.
func (c Compound) Class() KindClass {
	return ClassOf(c.Kind)
}

// CompoundDef is the detail record of a compound (<refid>.xml).
type CompoundDef struct {
	Kind     string
	Brief    Description
	Detailed Description
	Inner    []InnerRef
	Sections []Section
}

type InnerKind int

const (
	InnerNamespace InnerKind = iota
	InnerType
)

// InnerRef is a weak reference to a nested compound, used only for link rendering.
type InnerRef struct {
	Kind  InnerKind
	RefID string
	Name  string
}

// Section is a sectiondef: a visibility/kind group of members.
type Section struct {
	Kind    string
	Members []Member
}

// Member is one memberdef.
type Member struct {
	Kind       string
	ID         string
	Name       string
	Definition string
	ArgsString string
	Brief      Description
	Detailed   Description

	// Params holds formal parameter names in declaration order.
	Params []string
	// ParamDocs maps a parameter name to its free-text description. Entries may be
	// missing for documented-less parameters.
	ParamDocs map[string]Description
	Returns   Description
	Notes     []Description

	EnumValues []EnumValue
}

type EnumValue struct {
	Name  string
	Brief Description
}

// Description is a block-structured document: paragraphs, code blocks and lists.
type Description []Block

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockCode
	BlockList
)

// Block is one block-level element of a Description. Only the fields relevant to
// Kind are set.
type Block struct {
	Kind    BlockKind
	Content []Inline // BlockParagraph
	Lines   []string // BlockCode, one entry per source line
	List    *List    // BlockList
}

// InlineKind tags an Inline node.
type InlineKind int

const (
	InlineText InlineKind = iota
	InlineBold
	InlineEmphasis
	InlineCode
	InlineRef
	InlineLink
	InlineLineBreak
	InlineList
	// InlineSuppressed marks annotation nodes (parameterlist, simplesect) that are
	// extracted into Member fields instead of being rendered in prose.
	InlineSuppressed
	// InlineSpan is any other element; only its children are rendered.
	InlineSpan
)

// Inline is a node of mixed-content prose. Text that follows an element inside the
// same parent is stored as a separate InlineText sibling, so document order is
// the slice order.
type Inline struct {
	Kind     InlineKind
	Text     string // InlineText
	URL      string // InlineLink
	Children []Inline
	List     *List // InlineList
}

type List struct {
	Ordered bool
	Items   [][]Inline
}
