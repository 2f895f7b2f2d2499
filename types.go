package lessonmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-lessonmark/internal/assets"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures handout page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Section is one lesson passage with an optional heading.
type Section struct {
	ID      string // anchor id in the HTML output (optional)
	Title   string // section heading (optional)
	Passage string // raw lesson text
}

// Input contains rendering parameters.
type Input struct {
	Title    string        // document title (optional)
	Sections []Section     // at least one
	CSS      string        // extra CSS appended after the style (optional)
	Page     *PageSettings // handout page settings (optional, nil = defaults)
	HTMLOnly bool          // skip PDF generation
}

// RenderedSection is a section together with its parsed blocks.
type RenderedSection struct {
	Section
	Blocks []Block
}

// Result contains the outputs of a render.
type Result struct {
	Sections []RenderedSection
	HTML     []byte
	PDF      []byte // nil when Input.HTMLOnly is set
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout       time.Duration
	styleName     string
	assetPath     string
	resolvedStyle string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("lessonmark: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithStyle selects the CSS style by name ("lesson", "print", or a custom
// style found under the asset path). An empty name disables styling.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.styleName = name
	}
}

// WithAssetPath adds a directory whose styles/ entries override the embedded ones.
func WithAssetPath(dir string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = dir
	}
}

// StyleLoader loads CSS styles by name. Implementations may read from disk,
// an embedded filesystem, a database, etc.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// Compile-time check that the internal loaders satisfy StyleLoader.
var _ StyleLoader = (assets.AssetLoader)(nil)

// WithStyleLoader replaces the style loader entirely. WithAssetPath is ignored
// when a loader is supplied.
func WithStyleLoader(loader StyleLoader) Option {
	return func(r *Renderer) {
		r.assetLoader = loader
	}
}
