package pipeline

import (
	"html"
	"strings"
)

// SectionHTML is one rendered passage with its heading.
type SectionHTML struct {
	ID    string // anchor id, optional
	Title string // optional
	Body  string // HTML fragment
}

// BuildDocument wraps rendered sections in a standalone HTML5 document.
// Titles and ids are escaped; bodies are inserted as is.
func BuildDocument(title string, sections []SectionHTML) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(documentTitle(title)))
	b.WriteString("</title>\n</head>\n<body>\n")

	if title != "" {
		b.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	}

	for _, s := range sections {
		b.WriteString("<section")
		if s.ID != "" {
			b.WriteString(` id="` + html.EscapeString(s.ID) + `"`)
		}
		b.WriteString(">\n")
		if s.Title != "" {
			b.WriteString("<h2>" + html.EscapeString(s.Title) + "</h2>\n")
		}
		b.WriteString(s.Body)
		if !strings.HasSuffix(s.Body, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>")
	return b.String()
}

func documentTitle(title string) string {
	if title == "" {
		return "Lesson"
	}
	return title
}
