package markdown

// BlockKind tags one structural unit of a field's text.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockNumbered
	BlockParagraph
	BlockCode
	BlockBlank
)

// Block is one parsed unit. Which fields are meaningful depends on
// Kind: Level for headings (2 or 3), Depth for bullets (0 or 1), Index
// for numbered items, Lines for code blocks. Spans carry the inline
// text of everything except Blank and BlockCode. Blocks are built
// fresh per parse and never mutated afterwards.
type Block struct {
	Kind  BlockKind
	Level int
	Depth int
	Index int
	Spans []Span
	Lines []string
}

// Text is the block's flattened displayable text.
func (b Block) Text() string {
	return Flatten(b.Spans)
}
