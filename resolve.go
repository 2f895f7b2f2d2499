package lessonmark

// ResolvedBlock pairs a block with the inline spans of all its text.
// Only the fields matching the block's kind are set.
type ResolvedBlock struct {
	Block   Block
	Spans   []Span     // header and paragraph
	Items   [][]Span   // bullet list
	Headers [][]Span   // table
	Rows    [][][]Span // table
}

// Resolve tokenizes the text of every text-bearing block, producing the tree
// handed to a presentation layer. Code blocks carry no spans.
func Resolve(blocks []Block) []ResolvedBlock {
	out := make([]ResolvedBlock, len(blocks))
	for i, b := range blocks {
		rb := ResolvedBlock{Block: b}
		switch b.Kind() {
		case KindHeader:
			rb.Spans = b.(Header).Spans()
		case KindParagraph:
			rb.Spans = b.(Paragraph).Spans
		case KindBulletList:
			rb.Items = b.(BulletList).ItemSpans()
		case KindTable:
			t := b.(Table)
			rb.Headers = t.HeaderSpans()
			rb.Rows = t.RowSpans()
		}
		out[i] = rb
	}
	return out
}

// ParseResolved parses a passage and resolves it in one step.
func ParseResolved(passage string) []ResolvedBlock {
	return Resolve(Parse(passage))
}
