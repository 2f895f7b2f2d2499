package main

import (
	"errors"
	"os"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/config"
	"github.com/alnah/go-lessonmark/internal/content"
	"github.com/alnah/go-lessonmark/internal/fileutil"
)

// Exit codes for the lessonmark CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command succeeded (check: answer matched)
	ExitGeneral = 1 // General error, or check answer mismatch
	ExitUsage   = 2 // Invalid flags, config, references, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitRunner  = 5 // Code runner could not start
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Runner errors (exit 5)
	if errors.Is(err, lessonmark.ErrRunnerUnavailable) {
		return ExitRunner
	}

	// Browser errors (exit 4)
	if errors.Is(err, lessonmark.ErrBrowserConnect) ||
		errors.Is(err, lessonmark.ErrPageCreate) ||
		errors.Is(err, lessonmark.ErrPageLoad) ||
		errors.Is(err, lessonmark.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, content.ErrCatalogRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, content.ErrModuleNotFound) ||
		errors.Is(err, content.ErrTopicNotFound) ||
		errors.Is(err, content.ErrProblemNotFound) ||
		errors.Is(err, content.ErrInvalidModule) ||
		errors.Is(err, content.ErrDuplicateID) ||
		errors.Is(err, content.ErrEmptyCatalog) ||
		errors.Is(err, lessonmark.ErrNoSections) ||
		errors.Is(err, lessonmark.ErrEmptyCode) ||
		errors.Is(err, lessonmark.ErrInvalidPageSize) ||
		errors.Is(err, lessonmark.ErrInvalidOrientation) ||
		errors.Is(err, lessonmark.ErrInvalidMargin) ||
		errors.Is(err, lessonmark.ErrStyleNotFound) ||
		errors.Is(err, lessonmark.ErrInvalidAssetPath) ||
		errors.Is(err, fileutil.ErrEmptyBaseName) {
		return ExitUsage
	}

	return ExitGeneral
}
