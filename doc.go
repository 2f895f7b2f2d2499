// Package lessonmark parses the lesson markup used by tutorial content and
// renders it to HTML pages and PDF handouts.
//
// # Parsing
//
// A passage is segmented line by line into blocks, then the text of each block
// is tokenized into inline spans:
//
//	blocks := lessonmark.Parse("**Arrays**\n\nUse `map()` to transform ✅")
//	for _, b := range blocks {
//	    switch b.Kind() {
//	    case lessonmark.KindHeader:
//	        fmt.Println("header:", b.(lessonmark.Header).Text)
//	    case lessonmark.KindParagraph:
//	        fmt.Println("spans:", len(b.(lessonmark.Paragraph).Spans))
//	    }
//	}
//
// Block rules are tried in a fixed order, first match wins:
//
//  1. Fence: a line starting with ``` opens a code block that runs to the next fence
//  2. Header: a line that starts and ends with **
//  3. Table: a run of lines starting with |, separator rows dropped
//  4. Bullet list: a run of lines starting with "- "
//  5. Blank lines are skipped
//  6. Anything else is a one-line paragraph
//
// Inline spans are code (`x`), bold (**x**), and the emoji ⚠️ ✅ ❌ ⚡.
// Parsing never fails and is safe for concurrent use.
//
// Format re-emits blocks in the same markup, and Resolve attaches spans to
// every text-bearing block for presentation layers.
//
// # Rendering
//
// Renderer builds one HTML document from a list of sections and, unless
// Input.HTMLOnly is set, prints it to PDF with headless Chrome (go-rod):
//
//	r, err := lessonmark.NewRenderer(lessonmark.WithStyle("print"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	res, err := r.Render(ctx, lessonmark.Input{
//	    Title:    "Arrays",
//	    Sections: []lessonmark.Section{{Title: "Creating Arrays", Passage: text}},
//	    Page:     &lessonmark.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.5},
//	})
//
// For batch rendering, RendererPool hands out renderers that each own a browser.
//
// # Checking answers
//
// Runner executes learner code and captures its console output. CheckOutput
// compares that output with an expected answer, ignoring surrounding whitespace.
package lessonmark
