package lessonmark

import (
	"regexp"
	"strings"
)

// inlinePattern matches, in priority order, inline code, bold, and the emoji literals.
// Go's regexp alternation is leftmost-first, so at any position code wins over bold
// and bold over emoji. Empty code or bold spans never match.
var inlinePattern = regexp.MustCompile(strings.Join([]string{
	"`[^`]+`",
	`\*\*[^*]+\*\*`,
	regexp.QuoteMeta(emojiWarning),
	regexp.QuoteMeta(emojiCheck),
	regexp.QuoteMeta(emojiCross),
	regexp.QuoteMeta(emojiLightning),
}, "|"))

// Tokenize splits one line of raw text into inline spans.
//
// Text between matches becomes PlainText. Delimiters without a partner on the same
// line are left in the surrounding text. A line without any match yields exactly one
// PlainText span holding the whole input, even when the input is empty.
func Tokenize(text string) []Span {
	matches := inlinePattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{PlainText(text)}
	}

	spans := make([]Span, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			spans = append(spans, PlainText(text[last:start]))
		}
		spans = append(spans, tokenSpan(text[start:end]))
		last = end
	}
	if last < len(text) {
		spans = append(spans, PlainText(text[last:]))
	}
	return spans
}

// tokenSpan converts a matched token to its span, stripping delimiters.
func tokenSpan(token string) Span {
	switch {
	case strings.HasPrefix(token, "`"):
		return Code(token[1 : len(token)-1])
	case strings.HasPrefix(token, "**"):
		return Bold(token[2 : len(token)-2])
	default:
		return Emoji(glyphFor(token))
	}
}

// SpansText concatenates the literal content of spans, markers excluded.
func SpansText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
