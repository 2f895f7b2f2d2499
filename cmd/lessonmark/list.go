package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/content"
)

// runList prints the catalog, or the topics and problems of one module.
func runList(args []string, env *Environment) error {
	flags, positional, err := parseListFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: list takes at most one module", ErrUsage)
	}

	cfg, err := loadConfig(flags.common)
	if err != nil {
		return err
	}
	catalog, err := loadCatalogFor(flags.common, cfg, env)
	if err != nil {
		return err
	}

	if len(positional) == 0 {
		return listModules(env.Stdout, catalog)
	}
	m, err := findModule(catalog, positional[0])
	if err != nil {
		return err
	}
	return listModule(env.Stdout, m)
}

func listModules(w io.Writer, catalog *content.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range catalog.Modules {
		fmt.Fprintf(tw, "%s\t%s %s\t%d topics, %d problems\n", m.ID, m.Icon, m.Title, len(m.Topics), len(m.Problems))
	}
	return tw.Flush()
}

func listModule(w io.Writer, m *content.Module) error {
	fmt.Fprintf(w, "%s %s\n", m.Icon, m.Title)
	if m.Description != "" {
		fmt.Fprintln(w, m.Description)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\nTopics:")
	for _, t := range m.Topics {
		fmt.Fprintf(tw, "  %s/%s\t%s\n", m.ID, t.ID, t.Title)
	}
	fmt.Fprintln(tw, "\nProblems:")
	for _, p := range m.Problems {
		desc := lessonmark.SpansText(lessonmark.Tokenize(p.Description))
		fmt.Fprintf(tw, "  %d\t%s\t%s\n", p.ID, p.Title, desc)
	}
	return tw.Flush()
}
