package lessonmark

import (
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// htmlTree builds a goldmark document straight from resolved blocks, so the
// HTML stage renders exactly the spans the tokenizer produced. Every text
// node points into source, which the builder grows as it goes.
type htmlTree struct {
	source []byte
}

// toHTMLTree returns the goldmark document for blocks and the source its
// text segments refer to. Headers become level-3 headings, matching how
// lesson pages present them.
func toHTMLTree(blocks []Block) (ast.Node, []byte) {
	t := &htmlTree{}
	doc := ast.NewDocument()
	for _, b := range blocks {
		if n := t.block(b); n != nil {
			doc.AppendChild(doc, n)
		}
	}
	return doc, t.source
}

func (t *htmlTree) block(b Block) ast.Node {
	switch b.Kind() {
	case KindCodeBlock:
		return t.codeBlock(b.(CodeBlock))
	case KindHeader:
		return t.inlines(ast.NewHeading(3), b.(Header).Spans())
	case KindTable:
		return t.table(b.(Table))
	case KindBulletList:
		list := ast.NewList('-')
		list.IsTight = true
		for _, spans := range b.(BulletList).ItemSpans() {
			item := ast.NewListItem(len(bulletPrefix))
			item.AppendChild(item, t.inlines(ast.NewTextBlock(), spans))
			list.AppendChild(list, item)
		}
		return list
	case KindParagraph:
		return t.inlines(ast.NewParagraph(), b.(Paragraph).Spans)
	default:
		return nil
	}
}

// segment appends s to the source and returns the segment covering it.
func (t *htmlTree) segment(s string) text.Segment {
	start := len(t.source)
	t.source = append(t.source, s...)
	return text.NewSegment(start, len(t.source))
}

// literal returns a text node written verbatim, HTML-escaped but with no
// entity or backslash processing.
func (t *htmlTree) literal(s string) *ast.Text {
	n := ast.NewTextSegment(t.segment(s))
	n.SetRaw(true)
	return n
}

func (t *htmlTree) inlines(parent ast.Node, spans []Span) ast.Node {
	for _, s := range spans {
		switch s.Kind {
		case SpanCode:
			code := ast.NewCodeSpan()
			code.AppendChild(code, t.literal(s.Text))
			parent.AppendChild(parent, code)
		case SpanBold:
			strong := ast.NewEmphasis(2)
			strong.AppendChild(strong, t.literal(s.Text))
			parent.AppendChild(parent, strong)
		default:
			if s.Text != "" {
				parent.AppendChild(parent, t.literal(s.Text))
			}
		}
	}
	return parent
}

// codeBlock keeps lines byte for byte; only the first word of Info names the language.
func (t *htmlTree) codeBlock(c CodeBlock) ast.Node {
	var info *ast.Text
	if c.Info != "" {
		info = ast.NewTextSegment(t.segment(c.Info))
	}
	n := ast.NewFencedCodeBlock(info)
	lines := text.NewSegments()
	for _, line := range c.Lines {
		lines.Append(t.segment(line + "\n"))
	}
	n.SetLines(lines)
	return n
}

// table pads every row to the widest row so no cell is dropped.
func (t *htmlTree) table(tb Table) ast.Node {
	width := len(tb.Headers)
	for _, row := range tb.Rows {
		width = max(width, len(row))
	}
	alignments := make([]extast.Alignment, width)
	for i := range alignments {
		alignments[i] = extast.AlignNone
	}

	table := extast.NewTable()
	table.Alignments = alignments
	table.AppendChild(table, extast.NewTableHeader(t.row(tb.HeaderSpans(), alignments)))
	for _, cells := range tb.RowSpans() {
		table.AppendChild(table, t.row(cells, alignments))
	}
	return table
}

func (t *htmlTree) row(cells [][]Span, alignments []extast.Alignment) *extast.TableRow {
	row := extast.NewTableRow(alignments)
	for i := range alignments {
		cell := extast.NewTableCell()
		if i < len(cells) {
			t.inlines(cell, cells[i])
		}
		row.AppendChild(row, cell)
	}
	return row
}
