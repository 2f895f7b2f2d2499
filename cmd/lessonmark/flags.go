package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	catalog string
	quiet   bool
	verbose bool
}

// pageFlags holds handout page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds CSS selection flags.
type styleFlags struct {
	name      string
	assetPath string
	noStyle   bool
}

// handoutFlags holds flags shared by render and export.
type handoutFlags struct {
	common  commonFlags
	output  string
	pdf     bool
	timeout string
	page    pageFlags
	style   styleFlags
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	handoutFlags
	title string
}

// exportFlags holds flags for the export command.
type exportFlags struct {
	handoutFlags
	workers int
}

// treeFlags holds flags for the tree command.
type treeFlags struct {
	common commonFlags
	format string
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common  commonFlags
	node    string
	timeout string
	hint    bool
}

// listFlags holds flags for the list command.
type listFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.catalog, "catalog", "", "directory of lesson modules (default: bundled)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addStyleFlags adds CSS flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.name, "style", "", "CSS style name: lesson, print, or a custom style")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory whose styles/ override the built-in ones")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
}

// addHandoutFlags adds output, page and style flags shared by render and export.
func addHandoutFlags(fs *flag.FlagSet, f *handoutFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (\"-\" = stdout)")
	fs.BoolVar(&f.pdf, "pdf", false, "write PDF instead of HTML (needs Chrome)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)
}

// parseError marks flag errors as usage errors. Help requests pass through
// so runMain can exit successfully.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// newFlagSet creates a FlagSet whose usage goes to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", w, printRenderUsage)
	addHandoutFlags(fs, &f.handoutFlags)
	fs.StringVar(&f.title, "title", "", "document title (default: topic, module or file name)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, w io.Writer) (*exportFlags, []string, error) {
	f := &exportFlags{}
	fs := newFlagSet("export", w, printExportUsage)
	addHandoutFlags(fs, &f.handoutFlags)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseTreeFlags parses tree command flags and returns positional args.
func parseTreeFlags(args []string, w io.Writer) (*treeFlags, []string, error) {
	f := &treeFlags{}
	fs := newFlagSet("tree", w, printTreeUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.format, "format", "f", formatYAML, "output format: yaml, lesson")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string, w io.Writer) (*checkFlags, []string, error) {
	f := &checkFlags{}
	fs := newFlagSet("check", w, printCheckUsage)
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.node, "node", "", "node executable (default: node on PATH)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "execution timeout (e.g., 5s)")
	fs.BoolVar(&f.hint, "hint", false, "print the problem hint")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, w io.Writer) (*listFlags, []string, error) {
	f := &listFlags{}
	fs := newFlagSet("list", w, printListUsage)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}
