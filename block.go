package lessonmark

// BlockKind identifies the variant of a Block.
type BlockKind int

// Block kinds, in the precedence order used by the segmenter.
const (
	KindCodeBlock BlockKind = iota
	KindHeader
	KindTable
	KindBulletList
	KindParagraph
)

// String returns the lowercase name of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindCodeBlock:
		return "code"
	case KindHeader:
		return "header"
	case KindTable:
		return "table"
	case KindBulletList:
		return "list"
	case KindParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Block is one structural unit of a lesson passage.
// The set of implementations is closed: CodeBlock, Header, Table, BulletList and Paragraph.
// Callers switch on Kind() rather than probing concrete types.
type Block interface {
	Kind() BlockKind
	isBlock()
}

// Compile-time checks that every variant satisfies Block.
var (
	_ Block = CodeBlock{}
	_ Block = Header{}
	_ Block = Table{}
	_ Block = BulletList{}
	_ Block = Paragraph{}
)

// CodeBlock holds the lines between an opening and a closing fence, unmodified.
type CodeBlock struct {
	Lines []string
	Info  string // text after the opening fence, e.g. "js"
}

// Header is a bold-only line.
type Header struct {
	Text string
}

// Table is a pipe table. The separator row is never stored.
type Table struct {
	Headers []string
	Rows    [][]string
}

// BulletList is a run of "- " prefixed lines.
type BulletList struct {
	Items []string
}

// Paragraph is a single line of running text.
type Paragraph struct {
	Spans []Span
}

func (CodeBlock) Kind() BlockKind  { return KindCodeBlock }
func (Header) Kind() BlockKind     { return KindHeader }
func (Table) Kind() BlockKind      { return KindTable }
func (BulletList) Kind() BlockKind { return KindBulletList }
func (Paragraph) Kind() BlockKind  { return KindParagraph }

func (CodeBlock) isBlock()  {}
func (Header) isBlock()     {}
func (Table) isBlock()      {}
func (BulletList) isBlock() {}
func (Paragraph) isBlock()  {}

// Spans tokenizes the header text.
func (h Header) Spans() []Span {
	return Tokenize(h.Text)
}

// ItemSpans tokenizes every list item, preserving order.
func (l BulletList) ItemSpans() [][]Span {
	out := make([][]Span, len(l.Items))
	for i, item := range l.Items {
		out[i] = Tokenize(item)
	}
	return out
}

// HeaderSpans tokenizes every header cell.
func (t Table) HeaderSpans() [][]Span {
	return tokenizeCells(t.Headers)
}

// RowSpans tokenizes every data cell, row by row.
func (t Table) RowSpans() [][][]Span {
	out := make([][][]Span, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = tokenizeCells(row)
	}
	return out
}

func tokenizeCells(cells []string) [][]Span {
	out := make([][]Span, len(cells))
	for i, c := range cells {
		out[i] = Tokenize(c)
	}
	return out
}
