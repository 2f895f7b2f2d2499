package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of passages read from files.
const byteOrderMark = "\uFEFF"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// PassagePreprocessor defines the contract for passage preprocessing.
type PassagePreprocessor interface {
	PreprocessPassage(ctx context.Context, content string) string
}

// LessonPreprocessor prepares raw passage text for segmentation.
type LessonPreprocessor struct{}

// PreprocessPassage strips a leading byte order mark and normalizes line endings.
func (p *LessonPreprocessor) PreprocessPassage(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
