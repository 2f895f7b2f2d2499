package lessonmark

import (
	"context"
	"strings"
	"testing"

	"github.com/alnah/go-lessonmark/internal/pipeline"
)

// ---------------------------------------------------------------------------
// TestToHTMLTree - Blocks rendered through goldmark
// ---------------------------------------------------------------------------

func TestToHTMLTree(t *testing.T) {
	t.Parallel()

	conv := pipeline.NewGoldmarkConverter()

	tests := []struct {
		name     string
		blocks   []Block
		contains []string
		excludes []string
	}{
		{
			name:     "header becomes h3 with inline spans",
			blocks:   []Block{Header{Text: "Arrays `[]`"}},
			contains: []string{"<h3>Arrays <code>[]</code></h3>"},
		},
		{
			name:     "plain text is escaped and never reinterpreted",
			blocks:   []Block{Paragraph{Spans: []Span{PlainText(`# not *x* <b> \# &copy;`)}}},
			contains: []string{`<p># not *x* &lt;b&gt; \# &amp;copy;</p>`},
			excludes: []string{"<h1>", "<em>", "©"},
		},
		{
			name:     "bold keeps edge spaces",
			blocks:   []Block{Paragraph{Spans: []Span{PlainText("a"), Bold(" b "), PlainText("c")}}},
			contains: []string{"<p>a<strong> b </strong>c</p>"},
		},
		{
			name:     "code keeps edge spaces and escapes",
			blocks:   []Block{Paragraph{Spans: []Span{Code(" a<b ")}}},
			contains: []string{"<code> a&lt;b </code>"},
		},
		{
			name:     "emoji pass through",
			blocks:   []Block{Paragraph{Spans: []Span{Emoji(GlyphWarning), PlainText(" careful")}}},
			contains: []string{"<p>⚠️ careful</p>"},
		},
		{
			name:     "tight bullets",
			blocks:   []Block{BulletList{Items: []string{"a", "**b**"}}},
			contains: []string{"<ul>", "<li>a</li>", "<li><strong>b</strong></li>"},
			excludes: []string{"<p>"},
		},
		{
			name:     "fenced code keeps lines verbatim",
			blocks:   []Block{CodeBlock{Lines: []string{"```", "<x>"}, Info: "md"}},
			contains: []string{"<pre><code class=\"language-md\">```\n&lt;x&gt;\n</code></pre>"},
		},
		{
			name:     "code without info",
			blocks:   []Block{CodeBlock{Lines: []string{"x"}}},
			contains: []string{"<pre><code>x\n</code></pre>"},
		},
		{
			name:     "table rows padded to widest row",
			blocks:   []Block{Table{Headers: []string{"**A**"}, Rows: [][]string{{"1", "`2`"}}}},
			contains: []string{"<th><strong>A</strong></th>", "<th></th>", "<td>1</td>", "<td><code>2</code></td>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, source := toHTMLTree(tt.blocks)
			got, err := conv.ToHTML(context.Background(), doc, source)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("HTML should contain %q, got:\n%s", want, got)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("HTML should not contain %q, got:\n%s", bad, got)
				}
			}
		})
	}
}
