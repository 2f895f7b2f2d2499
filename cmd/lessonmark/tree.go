package main

import (
	"fmt"
	"strings"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/yamlutil"
)

// Output formats for the tree command.
const (
	formatYAML   = "yaml"
	formatLesson = "lesson"
)

// treeSection is the YAML shape of one parsed section.
type treeSection struct {
	ID     string      `yaml:"id,omitempty"`
	Title  string      `yaml:"title,omitempty"`
	Blocks []treeBlock `yaml:"blocks"`
}

// treeBlock is the YAML shape of a resolved block. Only the fields of its kind are set.
type treeBlock struct {
	Kind    string         `yaml:"kind"`
	Info    string         `yaml:"info,omitempty"`
	Lines   []string       `yaml:"lines,omitempty"`
	Spans   []treeSpan     `yaml:"spans,omitempty"`
	Items   [][]treeSpan   `yaml:"items,omitempty"`
	Headers [][]treeSpan   `yaml:"headers,omitempty"`
	Rows    [][][]treeSpan `yaml:"rows,omitempty"`
}

type treeSpan struct {
	Kind  string `yaml:"kind"`
	Text  string `yaml:"text"`
	Glyph string `yaml:"glyph,omitempty"`
}

// runTree prints the parsed block tree of a file, topic or module.
func runTree(args []string, env *Environment) error {
	flags, positional, err := parseTreeFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: tree takes exactly one file, module or module/topic", ErrUsage)
	}
	if flags.format != formatYAML && flags.format != formatLesson {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, flags.format, formatYAML, formatLesson)
	}

	cfg, err := loadConfig(flags.common)
	if err != nil {
		return err
	}

	src, err := resolveSource(positional[0], flags.common, cfg, env)
	if err != nil {
		return err
	}

	if flags.format == formatLesson {
		return writeLesson(env, src)
	}

	sections := make([]treeSection, len(src.sections))
	for i, s := range src.sections {
		sections[i] = treeSection{ID: s.ID, Title: s.Title, Blocks: toTree(lessonmark.ParseResolved(s.Passage))}
	}
	if err := yamlutil.Encode(env.Stdout, sections); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// writeLesson prints each passage normalized through Parse and Format.
func writeLesson(env *Environment, src *lessonSource) error {
	parts := make([]string, 0, len(src.sections))
	for _, s := range src.sections {
		parts = append(parts, lessonmark.Format(lessonmark.Parse(s.Passage)))
	}
	return writeOutput(env, stdioName, []byte(strings.Join(parts, "\n\n")+"\n"))
}

func toTree(resolved []lessonmark.ResolvedBlock) []treeBlock {
	out := make([]treeBlock, len(resolved))
	for i, rb := range resolved {
		tb := treeBlock{
			Kind:    rb.Block.Kind().String(),
			Spans:   toTreeSpans(rb.Spans),
			Items:   toTreeSpanLists(rb.Items),
			Headers: toTreeSpanLists(rb.Headers),
		}
		for _, row := range rb.Rows {
			tb.Rows = append(tb.Rows, toTreeSpanLists(row))
		}
		if cb, ok := rb.Block.(lessonmark.CodeBlock); ok {
			tb.Info = cb.Info
			tb.Lines = cb.Lines
		}
		out[i] = tb
	}
	return out
}

func toTreeSpanLists(lists [][]lessonmark.Span) [][]treeSpan {
	if lists == nil {
		return nil
	}
	out := make([][]treeSpan, len(lists))
	for i, spans := range lists {
		out[i] = toTreeSpans(spans)
	}
	return out
}

func toTreeSpans(spans []lessonmark.Span) []treeSpan {
	if spans == nil {
		return nil
	}
	out := make([]treeSpan, len(spans))
	for i, s := range spans {
		ts := treeSpan{Kind: s.Kind.String(), Text: s.Text}
		if s.Kind == lessonmark.SpanEmoji {
			ts.Glyph = s.Glyph.Name()
		}
		out[i] = ts
	}
	return out
}
