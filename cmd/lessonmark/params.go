package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/config"
	"github.com/alnah/go-lessonmark/internal/content"
	"github.com/alnah/go-lessonmark/internal/fileutil"
	"github.com/alnah/go-lessonmark/internal/hints"
)

// stdioName selects stdin for input and stdout for output.
const stdioName = "-"

// lessonFileExtensions are treated as file references, never as module ids.
var lessonFileExtensions = []string{".txt", ".lesson", ".md"}

// lessonSource is a set of passages ready to render.
type lessonSource struct {
	name     string // output base name
	title    string
	sections []lessonmark.Section
}

// loadConfig loads the config named by --config, or the defaults.
func loadConfig(f commonFlags) (*config.Config, error) {
	if f.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(f.config)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(f.config)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadCatalogFor loads the catalog selected by --catalog or the config.
func loadCatalogFor(f commonFlags, cfg *config.Config, env *Environment) (*content.Catalog, error) {
	dir := cfg.Catalog.Dir
	if f.catalog != "" {
		dir = f.catalog
	}
	return env.LoadCatalog(dir)
}

// findModule looks a module up and lists the available ids on failure.
func findModule(catalog *content.Catalog, id string) (*content.Module, error) {
	m, err := catalog.Module(id)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForModuleNotFound(catalog.IDs()))
	}
	return m, nil
}

// isFileRef reports whether ref names a file rather than a catalog entry.
func isFileRef(ref string) bool {
	if fileutil.FileExists(ref) {
		return true
	}
	ext := strings.ToLower(filepath.Ext(ref))
	for _, e := range lessonFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// resolveSource turns a command-line reference into passages:
//   - "-": stdin
//   - an existing file, or a path with a lesson file extension
//   - "module": every topic of the module, plus its exercises
//   - "module/topic": one topic
func resolveSource(ref string, f commonFlags, cfg *config.Config, env *Environment) (*lessonSource, error) {
	switch {
	case ref == stdioName:
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return &lessonSource{name: "stdin", sections: []lessonmark.Section{{Passage: string(data)}}}, nil

	case isFileRef(ref):
		data, err := os.ReadFile(ref) // #nosec G304 -- user-provided input path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		return &lessonSource{name: name, title: name, sections: []lessonmark.Section{{Passage: string(data)}}}, nil
	}

	catalog, err := loadCatalogFor(f, cfg, env)
	if err != nil {
		return nil, err
	}

	moduleID, topicID, hasTopic := strings.Cut(ref, "/")
	m, err := catalog.Module(moduleID)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForLessonReference(catalog.IDs()))
	}
	if !hasTopic {
		return moduleSource(m), nil
	}

	t, err := m.Topic(topicID)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForModuleNotFound(m.TopicIDs()))
	}
	return &lessonSource{
		name:     m.ID + "-" + t.ID,
		title:    t.Title,
		sections: []lessonmark.Section{{ID: t.ID, Passage: t.Theory}},
	}, nil
}

// moduleSource builds one section per topic, then an exercises section.
func moduleSource(m *content.Module) *lessonSource {
	sections := make([]lessonmark.Section, 0, len(m.Topics)+1)
	for _, t := range m.Topics {
		sections = append(sections, lessonmark.Section{ID: t.ID, Title: t.Title, Passage: t.Theory})
	}
	if len(m.Problems) > 0 {
		sections = append(sections, lessonmark.Section{ID: "exercises", Title: "Exercises", Passage: exercisesPassage(m.Problems)})
	}
	return &lessonSource{name: m.ID, title: m.Title, sections: sections}
}

// exercisesPassage writes problems back out as lesson markup: a header, the
// description and the starter code for each.
func exercisesPassage(problems []content.Problem) string {
	var blocks []lessonmark.Block
	for i, p := range problems {
		blocks = append(blocks, lessonmark.Header{Text: fmt.Sprintf("%d. %s", i+1, p.Title)})
		if strings.TrimSpace(p.Description) != "" {
			blocks = append(blocks, lessonmark.Paragraph{Spans: lessonmark.Tokenize(p.Description)})
		}
		if code := strings.TrimRight(p.StarterCode, "\n"); code != "" {
			blocks = append(blocks, lessonmark.CodeBlock{Lines: strings.Split(code, "\n"), Info: "js"})
		}
	}
	return lessonmark.Format(blocks)
}

// parseTimeout parses a duration flag. Empty means "use the default" (0).
func parseTimeout(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, s)
	}
	return d, nil
}

// mergeHandoutFlags copies explicitly set flags over config values (CLI wins).
func mergeHandoutFlags(f *handoutFlags, cfg *config.Config) {
	if f.style.name != "" {
		cfg.Style.Name = f.style.name
	}
	if f.style.assetPath != "" {
		cfg.Assets.BasePath = f.style.assetPath
	}
	if f.page.size != "" {
		cfg.Page.Size = f.page.size
	}
	if f.page.orientation != "" {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.page.margin != 0 {
		cfg.Page.Margin = f.page.margin
	}
}

// rendererOptions builds renderer options from merged config and flags.
func rendererOptions(f *handoutFlags, cfg *config.Config) ([]lessonmark.Option, error) {
	var opts []lessonmark.Option

	timeout, err := parseTimeout(f.timeout)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, lessonmark.WithTimeout(timeout))
	}

	switch {
	case f.style.noStyle:
		opts = append(opts, lessonmark.WithStyle(""))
	case cfg.Style.Name != "":
		opts = append(opts, lessonmark.WithStyle(cfg.Style.Name))
	}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, lessonmark.WithAssetPath(cfg.Assets.BasePath))
	}

	return opts, nil
}

// buildPageSettings returns nil when no page setting is configured.
func buildPageSettings(cfg *config.Config) (*lessonmark.PageSettings, error) {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil, nil
	}

	ps := lessonmark.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = strings.ToLower(cfg.Page.Size)
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = strings.ToLower(cfg.Page.Orientation)
	}
	if cfg.Page.Margin != 0 {
		ps.Margin = cfg.Page.Margin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// outputExtension returns the file extension for the selected format.
func outputExtension(pdf bool) string {
	if pdf {
		return "pdf"
	}
	return "html"
}

// renderedBytes picks the artifact matching the selected format.
func renderedBytes(result *lessonmark.Result, pdf bool) []byte {
	if pdf {
		return result.PDF
	}
	return result.HTML
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(env *Environment, path string, data []byte) error {
	if path == stdioName {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
