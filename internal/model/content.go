package model

// ContentNode is one node in the structured-text tree of a documentation
// comment. Leaf variants carry literal text; container variants carry an
// ordered child sequence.
type ContentNode interface {
	Children() []ContentNode
}

// leaf variants

// Text is a plain text run.
type Text struct{ Text string }

// Symbol is punctuation inside a rendered signature.
type Symbol struct{ Text string }

// Keyword is a language keyword inside a rendered signature.
type Keyword struct{ Text string }

// Identifier is a declaration name inside a rendered signature.
type Identifier struct{ Text string }

func (Text) Children() []ContentNode       { return nil }
func (Symbol) Children() []ContentNode     { return nil }
func (Keyword) Children() []ContentNode    { return nil }
func (Identifier) Children() []ContentNode { return nil }

// Block is the generic container variant; the other containers embed it.
type Block struct {
	children []ContentNode
}

func (b *Block) Children() []ContentNode { return b.children }

// Append adds children in order and returns the block for chaining.
func (b *Block) Append(nodes ...ContentNode) *Block {
	b.children = append(b.children, nodes...)
	return b
}

// AppendText appends a plain text leaf.
func (b *Block) AppendText(text string) *Block {
	return b.Append(Text{Text: text})
}

// IsEmpty reports whether the block has no children.
func (b *Block) IsEmpty() bool { return len(b.children) == 0 }

type (
	// Para is one paragraph of documentation text.
	Para struct{ Block }
	// Strong is strongly emphasized inline content.
	Strong struct{ Block }
	// Emphasis is emphasized inline content.
	Emphasis struct{ Block }
	// Code is an inline code span.
	Code struct{ Block }
	// BlockCode is a fenced or indented code block.
	BlockCode struct{ Block }
	// List is an itemized list.
	List struct{ Block }
	// ListItem is one entry of a List.
	ListItem struct{ Block }
)

// NodeLink is a resolved reference to another documentation node. Children,
// when present, form the display content; rendering falls back to the target
// name otherwise.
type NodeLink struct {
	Block
	To *Node
}

// ExternalLink points at a raw URL outside the documentation model.
type ExternalLink struct {
	Block
	Href string
}

// Section is a labelled content block ("Parameters", "See Also", "$summary").
// Labels starting with '$' are reserved for machine-generated sections.
type Section struct {
	Block
	Label   string
	Subject string
}

// Content is the root of a documentation comment: the first child acts as
// the summary, the remainder as the description, plus named sections.
type Content struct {
	Block
	sections []*Section
}

// NewContent returns an empty content root.
func NewContent() *Content { return &Content{} }

// Sections returns the named sections in insertion order.
func (c *Content) Sections() []*Section { return c.sections }

// AddSection appends a named section and returns it for population.
func (c *Content) AddSection(label, subject string) *Section {
	s := &Section{Label: label, Subject: subject}
	c.sections = append(c.sections, s)
	return s
}

// Summary returns the first child block, or nil for empty content.
func (c *Content) Summary() ContentNode {
	if len(c.children) == 0 {
		return nil
	}
	return c.children[0]
}

// Description returns everything after the summary wrapped in a Block.
func (c *Content) Description() ContentNode {
	d := &Block{}
	if len(c.children) > 1 {
		d.Append(c.children[1:]...)
	}
	return d
}

// IsEmpty reports whether the content has neither children nor sections.
func (c *Content) IsEmpty() bool {
	return len(c.children) == 0 && len(c.sections) == 0
}
