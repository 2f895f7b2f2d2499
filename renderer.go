package lessonmark

import (
	"context"
	"fmt"

	"github.com/alnah/go-lessonmark/internal/assets"
	"github.com/alnah/go-lessonmark/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.PassagePreprocessor = (*pipeline.LessonPreprocessor)(nil)
	_ pipeline.HTMLConverter       = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector         = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                 = (*rodConverter)(nil)
	_ pdfRenderer                  = (*rodRenderer)(nil)
)

// Renderer turns lesson sections into an HTML page and, optionally, a PDF handout.
// Create with NewRenderer, call Render per document, and Close when done.
// A Renderer owns one browser and is not safe for concurrent Render calls;
// use RendererPool for parallel work.
type Renderer struct {
	cfg           rendererConfig
	assetLoader   StyleLoader
	preprocessor  pipeline.PassagePreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
}

// NewRenderer creates a Renderer. The browser is started lazily on the first
// PDF render, so HTML-only use never launches Chrome.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			timeout:   defaultTimeout,
			styleName: assets.DefaultStyleName,
		},
		preprocessor:  &pipeline.LessonPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.assetLoader == nil {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = resolver
	}

	if r.cfg.styleName != "" {
		css, err := r.assetLoader.LoadStyle(r.cfg.styleName)
		if err != nil {
			return nil, fmt.Errorf("loading style %q: %w", r.cfg.styleName, err)
		}
		r.cfg.resolvedStyle = css
	}

	if r.pdfConverter == nil {
		r.pdfConverter = newRodConverter(r.cfg.timeout)
	}

	return r, nil
}

// Render parses every section, builds one HTML document and, unless
// input.HTMLOnly is set, prints it to PDF.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	res := &Result{Sections: make([]RenderedSection, 0, len(input.Sections))}
	parts := make([]pipeline.SectionHTML, 0, len(input.Sections))

	for i, s := range input.Sections {
		passage := r.preprocessor.PreprocessPassage(ctx, s.Passage)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		blocks := Parse(passage)
		doc, source := toHTMLTree(blocks)
		body, err := r.htmlConverter.ToHTML(ctx, doc, source)
		if err != nil {
			return nil, fmt.Errorf("converting section %d to HTML: %w", i+1, err)
		}

		res.Sections = append(res.Sections, RenderedSection{Section: s, Blocks: blocks})
		parts = append(parts, pipeline.SectionHTML{ID: s.ID, Title: s.Title, Body: body})
	}

	css := r.cfg.resolvedStyle
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	htmlContent := r.cssInjector.InjectCSS(ctx, pipeline.BuildDocument(input.Title, parts), css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	res.HTML = []byte(htmlContent)

	if input.HTMLOnly {
		return res, nil
	}

	pdf, err := r.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases the browser, if one was started.
func (r *Renderer) Close() error {
	if r.pdfConverter != nil {
		return r.pdfConverter.Close()
	}
	return nil
}

// validateInput is the trust boundary for library callers that build Input by hand.
func validateInput(input Input) error {
	if len(input.Sections) == 0 {
		return ErrNoSections
	}
	return input.Page.Validate()
}
