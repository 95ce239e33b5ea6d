// Package content holds the static style-guide document shown by the viewer.
package content

// BlockKind distinguishes prose from code samples.
type BlockKind int

const (
	TextBlock BlockKind = iota
	CodeBlock
)

// Block is one paragraph of prose or one code sample within a section.
type Block struct {
	Kind BlockKind
	Text string
}

// Text returns a prose block.
func Text(s string) Block { return Block{Kind: TextBlock, Text: s} }

// Code returns a code-sample block.
func Code(s string) Block { return Block{Kind: CodeBlock, Text: s} }

// Section is one titled block of content. It is immutable once built.
type Section struct {
	title string
	body  []Block
}

// NewSection builds a section from a title and its body blocks in display order.
func NewSection(title string, blocks ...Block) Section {
	body := make([]Block, len(blocks))
	copy(body, blocks)
	return Section{title: title, body: body}
}

func (s Section) Title() string { return s.title }

// Blocks returns a copy of the section body.
func (s Section) Blocks() []Block {
	out := make([]Block, len(s.body))
	copy(out, s.body)
	return out
}

// Document is the ordered, non-empty set of sections shown by the viewer.
type Document struct {
	id       string
	sections []Section
}

// NewDocument builds a document. Section order is display order.
// It panics if no sections are given.
func NewDocument(id string, sections ...Section) Document {
	if len(sections) == 0 {
		panic("content: document must have at least one section")
	}
	s := make([]Section, len(sections))
	copy(s, sections)
	return Document{id: id, sections: s}
}

// ID identifies the document for the reading position store.
func (d Document) ID() string { return d.id }

func (d Document) Len() int { return len(d.sections) }

// Section returns the i-th section.
func (d Document) Section(i int) Section { return d.sections[i] }

// Sections returns a copy of the sections in display order.
func (d Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	copy(out, d.sections)
	return out
}

// Titles returns the section titles in display order.
func (d Document) Titles() []string {
	titles := make([]string, len(d.sections))
	for i, s := range d.sections {
		titles[i] = s.title
	}
	return titles
}

// Store hands out the document it was built with.
type Store struct {
	doc Document
}

// NewStore wraps doc in a read-only store.
func NewStore(doc Document) *Store {
	return &Store{doc: doc}
}

// Document returns the stored document.
func (s *Store) Document() Document {
	return s.doc
}
