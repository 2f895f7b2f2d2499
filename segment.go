package lessonmark

import (
	"regexp"
	"strings"

	"github.com/alnah/go-lessonmark/internal/pipeline"
)

// Dialect markers.
const (
	fenceMarker  = "```"
	boldMarker   = "**"
	pipeMarker   = "|"
	bulletPrefix = "- "
)

// separatorRow matches a trimmed table row made only of dashes, pipes and whitespace.
var separatorRow = regexp.MustCompile(`^[\s|\-]+$`)

// blockRule is one guard of the segmenter. match inspects the line at the cursor;
// consume reads one or more lines starting there and returns the emitted block
// (nil when the rule emits nothing) and the index of the next unread line.
type blockRule struct {
	match   func(line string) bool
	consume func(lines []string, i int) (Block, int)
}

// blockRules is evaluated top to bottom; the first match wins.
// Precedence is part of the dialect: a bold-only line that also contains a pipe is a
// header because the header rule comes before the table rule.
var blockRules = []blockRule{
	{match: isFence, consume: consumeFence},
	{match: isHeader, consume: consumeHeader},
	{match: isTableRow, consume: consumeTable},
	{match: isBullet, consume: consumeBullets},
	{match: isBlank, consume: consumeBlank},
}

// Parse splits a passage into lines and segments it.
// Line endings are normalized first, so CRLF content parses like LF content.
func Parse(passage string) []Block {
	return Segment(strings.Split(pipeline.NormalizeLineEndings(passage), "\n"))
}

// Segment converts lines into blocks, consuming every line exactly once.
// It never fails: malformed constructs degrade to partial blocks.
func Segment(lines []string) []Block {
	blocks := make([]Block, 0, len(lines)/2+1)

	for i := 0; i < len(lines); {
		block, next := segmentAt(lines, i)
		if block != nil {
			blocks = append(blocks, block)
		}
		i = next
	}

	return blocks
}

// segmentAt applies the first matching rule at lines[i], or the paragraph default.
func segmentAt(lines []string, i int) (Block, int) {
	line := lines[i]
	for _, r := range blockRules {
		if r.match(line) {
			return r.consume(lines, i)
		}
	}
	return Paragraph{Spans: Tokenize(line)}, i + 1
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}

// isHeader requires two distinct markers, so "**" or "***" alone is not a header.
func isHeader(line string) bool {
	return len(line) >= 2*len(boldMarker) &&
		strings.HasPrefix(line, boldMarker) &&
		strings.HasSuffix(line, boldMarker)
}

func isTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), pipeMarker)
}

func isBullet(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), bulletPrefix)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isSeparatorRow reports whether a table line only delimits header from body.
func isSeparatorRow(line string) bool {
	return separatorRow.MatchString(strings.TrimSpace(line))
}

// consumeFence collects lines until the closing fence. An unterminated fence
// takes every remaining line.
func consumeFence(lines []string, i int) (Block, int) {
	info := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[i]), fenceMarker))

	var body []string
	j := i + 1
	for j < len(lines) && !isFence(lines[j]) {
		body = append(body, lines[j])
		j++
	}
	if j < len(lines) {
		j++ // closing fence
	}

	return CodeBlock{Lines: body, Info: info}, j
}

func consumeHeader(lines []string, i int) (Block, int) {
	return Header{Text: strings.ReplaceAll(lines[i], boldMarker, "")}, i + 1
}

// consumeTable reads the maximal run of table rows. Separator rows are dropped;
// the first surviving row supplies the headers. A run made only of separator
// rows emits nothing.
func consumeTable(lines []string, i int) (Block, int) {
	var rows [][]string
	j := i
	for j < len(lines) && isTableRow(lines[j]) {
		if !isSeparatorRow(lines[j]) {
			rows = append(rows, splitCells(lines[j]))
		}
		j++
	}

	if len(rows) == 0 {
		return nil, j
	}

	return Table{Headers: rows[0], Rows: rows[1:]}, j
}

// splitCells splits a row on pipes, trims every cell and drops the empty ones.
// Empty cells cannot be represented; see DESIGN.md.
func splitCells(line string) []string {
	parts := strings.Split(line, pipeMarker)
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func consumeBullets(lines []string, i int) (Block, int) {
	var items []string
	j := i
	for j < len(lines) && isBullet(lines[j]) {
		items = append(items, strings.TrimSpace(lines[j])[len(bulletPrefix):])
		j++
	}
	return BulletList{Items: items}, j
}

func consumeBlank(_ []string, i int) (Block, int) {
	return nil, i + 1
}
