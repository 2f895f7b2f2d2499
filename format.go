package lessonmark

import "strings"

// Format writes blocks back in the lesson dialect, restoring every structural
// marker. Blocks are separated by a blank line, and tables get a separator row.
// For any passage p, Parse(Format(Parse(p))) equals Parse(p).
func Format(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, formatBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

func formatBlock(b Block) string {
	switch b.Kind() {
	case KindCodeBlock:
		c := b.(CodeBlock)
		lines := make([]string, 0, len(c.Lines)+2)
		lines = append(lines, fenceMarker+c.Info)
		lines = append(lines, c.Lines...)
		lines = append(lines, fenceMarker)
		return strings.Join(lines, "\n")
	case KindHeader:
		return boldMarker + b.(Header).Text + boldMarker
	case KindTable:
		t := b.(Table)
		lines := make([]string, 0, len(t.Rows)+2)
		lines = append(lines, formatRow(t.Headers))
		lines = append(lines, pipeMarker+strings.Repeat(" --- "+pipeMarker, len(t.Headers)))
		for _, row := range t.Rows {
			lines = append(lines, formatRow(row))
		}
		return strings.Join(lines, "\n")
	case KindBulletList:
		items := b.(BulletList).Items
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = bulletPrefix + item
		}
		return strings.Join(lines, "\n")
	case KindParagraph:
		return FormatSpans(b.(Paragraph).Spans)
	default:
		return ""
	}
}

func formatRow(cells []string) string {
	return pipeMarker + " " + strings.Join(cells, " "+pipeMarker+" ") + " " + pipeMarker
}

// FormatSpans writes spans back with their inline delimiters.
func FormatSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case SpanCode:
			b.WriteString("`" + s.Text + "`")
		case SpanBold:
			b.WriteString(boldMarker + s.Text + boldMarker)
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
