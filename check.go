package lessonmark

import "strings"

// Verdict is the outcome of comparing captured output against an expected answer.
type Verdict int

// Verdicts.
const (
	VerdictMismatch Verdict = iota
	VerdictMatch
)

// String returns "match" or "mismatch".
func (v Verdict) String() string {
	if v == VerdictMatch {
		return "match"
	}
	return "mismatch"
}

// CheckOutput joins output lines with "\n" and compares the result with
// expected. Leading and trailing whitespace is ignored on both sides;
// interior whitespace and case are significant.
func CheckOutput(output []string, expected string) Verdict {
	got := strings.TrimSpace(strings.Join(output, "\n"))
	if got == strings.TrimSpace(expected) {
		return VerdictMatch
	}
	return VerdictMismatch
}
