package lessonmark

import (
	"errors"

	"github.com/alnah/go-lessonmark/internal/assets"
	"github.com/alnah/go-lessonmark/internal/pipeline"
)

// Sentinel errors for library operations.
// Parsing never fails; these cover rendering and code execution.
var (
	ErrNoSections     = errors.New("input has no sections")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Code execution errors. These report a harness that could not run at all;
	// failures of the learner's code are reported as *ExecutionError.
	ErrRunnerUnavailable = errors.New("code runner unavailable")
	ErrEmptyCode         = errors.New("code cannot be empty")
)
