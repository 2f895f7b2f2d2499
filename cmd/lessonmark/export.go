package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/config"
	"github.com/alnah/go-lessonmark/internal/content"
	"github.com/alnah/go-lessonmark/internal/fileutil"
)

// ExportResult holds the outcome of one module handout.
type ExportResult struct {
	ModuleID   string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// exportParams groups parameters shared by every handout in a batch.
type exportParams struct {
	dir  string
	pdf  bool
	page *lessonmark.PageSettings
}

// runExport renders one handout per module, in parallel.
func runExport(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseExportFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.output == stdioName {
		return fmt.Errorf("%w: export writes one file per module, -o must be a directory", ErrUsage)
	}
	log := newLogger(env.Stderr, flags.common)

	cfg, err := loadConfig(flags.common)
	if err != nil {
		return err
	}
	mergeHandoutFlags(&flags.handoutFlags, cfg)
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers > 0 {
		cfg.Export.Workers = flags.workers
	}

	catalog, err := loadCatalogFor(flags.common, cfg, env)
	if err != nil {
		return err
	}
	modules, err := selectModules(catalog, positional)
	if err != nil {
		return err
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}
	opts, err := rendererOptions(&flags.handoutFlags, cfg)
	if err != nil {
		return err
	}

	tuneMaxProcs(log)
	size := min(lessonmark.ResolvePoolSize(cfg.Export.Workers), len(modules))
	if !flags.pdf {
		// HTML rendering never starts a browser; a single renderer writes the
		// handouts one after another.
		size = 1
	}
	log.Debug().Int("pool", size).Int("modules", len(modules)).Msg("starting export")

	pool := env.NewPool(size, opts...)
	defer pool.Close()

	params := &exportParams{dir: cfg.Output.Dir, pdf: flags.pdf, page: page}
	results := exportBatch(ctx, pool, modules, params, env.Now)

	failed := reportResults(log, results)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d handout(s)", ErrExportFailed, failed, len(results))
	}
	return nil
}

// validateWorkers checks the --workers flag range.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// selectModules returns the named modules in argument order, or all of them.
func selectModules(catalog *content.Catalog, ids []string) ([]*content.Module, error) {
	if len(ids) == 0 {
		modules := make([]*content.Module, len(catalog.Modules))
		for i := range catalog.Modules {
			modules[i] = &catalog.Modules[i]
		}
		return modules, nil
	}

	modules := make([]*content.Module, 0, len(ids))
	for _, id := range ids {
		m, err := findModule(catalog, id)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// exportBatch renders modules concurrently, bounded by the pool size.
// A failed handout does not stop the others; results keep module order.
func exportBatch(ctx context.Context, pool Pool, modules []*content.Module, params *exportParams, now func() time.Time) []ExportResult {
	results := make([]ExportResult, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.Size())
	for i, m := range modules {
		g.Go(func() error {
			results[i] = exportModule(gctx, pool, m, params, now)
			return nil
		})
	}
	// exportModule reports failures in its result, so Wait never returns an error.
	_ = g.Wait()

	return results
}

// exportModule renders and writes a single module handout.
func exportModule(ctx context.Context, pool Pool, m *content.Module, params *exportParams, now func() time.Time) ExportResult {
	start := now()
	result := ExportResult{ModuleID: m.ID}
	finish := func(err error) ExportResult {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	path, err := fileutil.OutputPath(params.dir, m.ID, outputExtension(params.pdf))
	if err != nil {
		return finish(err)
	}
	result.OutputPath = path

	renderer, err := pool.Acquire(ctx)
	if err != nil {
		return finish(withHint(fmt.Errorf("creating renderer: %w", err)))
	}
	defer pool.Release(renderer)

	src := moduleSource(m)
	rendered, err := renderer.Render(ctx, lessonmark.Input{
		Title:    src.title,
		Sections: src.sections,
		Page:     params.page,
		HTMLOnly: !params.pdf,
	})
	if err != nil {
		return finish(withHint(err))
	}

	if err := fileutil.WriteFile(path, renderedBytes(rendered, params.pdf)); err != nil {
		return finish(withHint(fmt.Errorf("%w: %v", ErrWriteOutput, err)))
	}
	return finish(nil)
}

// reportResults logs each result and returns the failure count.
func reportResults(log zerolog.Logger, results []ExportResult) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error().Str("module", r.ModuleID).Err(r.Err).Msg("failed")
			continue
		}
		log.Info().Str("module", r.ModuleID).Str("path", r.OutputPath).
			Dur("elapsed", r.Duration.Round(time.Millisecond)).Msg("created")
	}
	if len(results) > 1 {
		log.Info().Int("succeeded", len(results)-failed).Int("failed", failed).Msg("export finished")
	}
	return failed
}
