package main

import (
	"context"
	"errors"
	"fmt"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/assets"
	"github.com/alnah/go-lessonmark/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUsage              = errors.New("invalid usage")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrAnswerMismatch     = errors.New("output does not match expected output")
	ErrExportFailed       = errors.New("export failed")
)

// withHint appends an actionable hint to errors whose fix does not depend on
// the call site. Site-specific hints (config paths, module ids, runner command)
// are added where the error is created.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, lessonmark.ErrBrowserConnect):
		hint = hints.ForBrowserConnect()
	case errors.Is(err, lessonmark.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(assets.EmbeddedStyles())
	case errors.Is(err, lessonmark.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
