package lessonmark

// SpanKind identifies the variant of a Span.
type SpanKind int

// Span kinds.
const (
	SpanText SpanKind = iota
	SpanCode
	SpanBold
	SpanEmoji
)

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanCode:
		return "code"
	case SpanBold:
		return "bold"
	case SpanEmoji:
		return "emoji"
	default:
		return "unknown"
	}
}

// Glyph is one of the four emoji literals recognized inline.
type Glyph int

// Recognized glyphs. GlyphNone is the zero value carried by non-emoji spans.
const (
	GlyphNone Glyph = iota
	GlyphWarning
	GlyphCheck
	GlyphCross
	GlyphLightning
)

// Emoji literals as they appear in lesson text.
// The warning sign carries the emoji presentation selector (U+FE0F).
const (
	emojiWarning   = "⚠️"
	emojiCheck     = "✅"
	emojiCross     = "❌"
	emojiLightning = "⚡"
)

// String returns the literal the glyph is written as.
func (g Glyph) String() string {
	switch g {
	case GlyphWarning:
		return emojiWarning
	case GlyphCheck:
		return emojiCheck
	case GlyphCross:
		return emojiCross
	case GlyphLightning:
		return emojiLightning
	default:
		return ""
	}
}

// Name returns a stable ASCII name, usable as a CSS class or map key.
func (g Glyph) Name() string {
	switch g {
	case GlyphWarning:
		return "warning"
	case GlyphCheck:
		return "check"
	case GlyphCross:
		return "cross"
	case GlyphLightning:
		return "lightning"
	default:
		return "none"
	}
}

// glyphFor maps a literal back to its glyph.
func glyphFor(literal string) Glyph {
	switch literal {
	case emojiWarning:
		return GlyphWarning
	case emojiCheck:
		return GlyphCheck
	case emojiCross:
		return GlyphCross
	case emojiLightning:
		return GlyphLightning
	default:
		return GlyphNone
	}
}

// Span is a typed inline fragment. Text never includes delimiters.
// For emoji spans Text holds the literal and Glyph identifies it.
type Span struct {
	Kind  SpanKind
	Text  string
	Glyph Glyph
}

// PlainText returns a plain text span.
func PlainText(text string) Span { return Span{Kind: SpanText, Text: text} }

// Code returns an inline code span.
func Code(text string) Span { return Span{Kind: SpanCode, Text: text} }

// Bold returns a bold span.
func Bold(text string) Span { return Span{Kind: SpanBold, Text: text} }

// Emoji returns an emoji span for g.
func Emoji(g Glyph) Span { return Span{Kind: SpanEmoji, Text: g.String(), Glyph: g} }
