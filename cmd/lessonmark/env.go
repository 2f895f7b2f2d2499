package main

import (
	"context"
	"io"
	"os"
	"time"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/content"
	"github.com/alnah/go-lessonmark/internal/sandbox"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, the lesson catalog, and the browser and code runners.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// LoadCatalog returns the catalog in dir, or the bundled one when dir is empty.
	LoadCatalog func(dir string) (*content.Catalog, error)
	// NewPool creates the renderer pool used by render and export.
	NewPool func(size int, opts ...lessonmark.Option) Pool
	// NewRunner creates the code runner used by check.
	NewRunner func(command string, timeout time.Duration) lessonmark.Runner
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		LoadCatalog: loadCatalog,
		NewPool: func(size int, opts ...lessonmark.Option) Pool {
			return &poolAdapter{pool: lessonmark.NewRendererPool(size, opts...)}
		},
		NewRunner: func(command string, timeout time.Duration) lessonmark.Runner {
			return sandbox.NewNodeRunner(sandbox.WithCommand(command), sandbox.WithTimeout(timeout))
		},
	}
}

func loadCatalog(dir string) (*content.Catalog, error) {
	if dir == "" {
		return content.Embedded()
	}
	return content.LoadDir(dir)
}

// Renderer is the part of *lessonmark.Renderer the CLI uses.
type Renderer interface {
	Render(ctx context.Context, input lessonmark.Input) (*lessonmark.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*lessonmark.Renderer)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (Renderer, error)
	Release(Renderer)
	Size() int
	Close() error
}
