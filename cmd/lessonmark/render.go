package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/config"
	"github.com/alnah/go-lessonmark/internal/fileutil"
)

// runRender renders one file, topic or module to HTML or PDF.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: render takes exactly one file, module or module/topic", ErrUsage)
	}
	log := newLogger(env.Stderr, flags.common)

	cfg, err := loadConfig(flags.common)
	if err != nil {
		return err
	}
	mergeHandoutFlags(&flags.handoutFlags, cfg)

	src, err := resolveSource(positional[0], flags.common, cfg, env)
	if err != nil {
		return err
	}
	if flags.title != "" {
		src.title = flags.title
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}
	opts, err := rendererOptions(&flags.handoutFlags, cfg)
	if err != nil {
		return err
	}

	outPath, err := renderOutputPath(flags.output, cfg, src.name, outputExtension(flags.pdf))
	if err != nil {
		return err
	}

	if flags.pdf {
		tuneMaxProcs(log)
	}
	pool := env.NewPool(1, opts...)
	defer pool.Close()

	start := env.Now()
	renderer, err := pool.Acquire(ctx)
	if err != nil {
		return withHint(fmt.Errorf("creating renderer: %w", err))
	}
	defer pool.Release(renderer)

	result, err := renderer.Render(ctx, lessonmark.Input{
		Title:    src.title,
		Sections: src.sections,
		Page:     page,
		HTMLOnly: !flags.pdf,
	})
	if err != nil {
		return withHint(err)
	}

	if err := writeOutput(env, outPath, renderedBytes(result, flags.pdf)); err != nil {
		return withHint(err)
	}

	blocks := 0
	for _, s := range result.Sections {
		blocks += len(s.Blocks)
	}
	log.Debug().Int("sections", len(result.Sections)).Int("blocks", blocks).
		Dur("elapsed", env.Now().Sub(start).Round(time.Millisecond)).Msg("rendered")
	if outPath != stdioName {
		log.Info().Str("path", outPath).Msg("created")
	}
	return nil
}

// renderOutputPath resolves -o for a single handout: stdout, a directory,
// an explicit file, or <output.dir>/<name>.<ext> when unset.
func renderOutputPath(output string, cfg *config.Config, name, ext string) (string, error) {
	switch {
	case output == stdioName:
		return stdioName, nil
	case output == "":
		return fileutil.OutputPath(cfg.Output.Dir, name, ext)
	case strings.HasSuffix(output, "/") || isDir(output):
		return fileutil.OutputPath(output, name, ext)
	default:
		return output, nil
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
