// Package txt2md segments unstructured plain text into typed blocks using
// line-level pattern matching and light statistical heuristics, and
// re-serializes those blocks into canonical Markdown.
package txt2md

// Kind identifies the structural type of a [Block].
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindListItem  Kind = "list-item"
	KindCode      Kind = "code"
	KindQuote     Kind = "quote"
)

// ListKind distinguishes bullet from numbered list items.
type ListKind string

const (
	ListBullet   ListKind = "bullet"
	ListNumbered ListKind = "numbered"
)

// Block is a classified, contiguous unit of document structure. Blocks are
// produced in document order; order is significant and preserved end-to-end.
type Block struct {
	Kind    Kind
	Content string

	// Level is set only for heading blocks (1-6).
	Level int

	// ListKind and ListIndex are set only for list-item blocks; ListIndex
	// only when ListKind is ListNumbered.
	ListKind  ListKind
	ListIndex int

	// Lang, Info and Meta are set only for code blocks whose opening fence
	// carried an info string. Info holds the verbatim string, Lang and Meta
	// its parsed form.
	Lang string
	Info string
	Meta Meta
}

type Blocks []*Block
