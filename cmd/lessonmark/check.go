package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	lessonmark "github.com/alnah/go-lessonmark"
	"github.com/alnah/go-lessonmark/internal/content"
	"github.com/alnah/go-lessonmark/internal/hints"
)

// Markers printed in front of an execution error and the verdict.
const (
	markMatch    = "✅"
	markMismatch = "❌"
)

// runCheck runs an answer to a problem and compares its output with the
// expected output. The answer is read from a file, from stdin ("-"), or is the
// problem's stored solution when no answer is given.
func runCheck(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseCheckFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) < 2 || len(positional) > 3 {
		return fmt.Errorf("%w: check takes <module> <problem> [file|-]", ErrUsage)
	}
	log := newLogger(env.Stderr, flags.common)

	cfg, err := loadConfig(flags.common)
	if err != nil {
		return err
	}
	if flags.node != "" {
		cfg.Runner.Command = flags.node
	}
	if flags.timeout != "" {
		if _, err := parseTimeout(flags.timeout); err != nil {
			return err
		}
		cfg.Runner.Timeout = flags.timeout
	}

	catalog, err := loadCatalogFor(flags.common, cfg, env)
	if err != nil {
		return err
	}
	m, err := findModule(catalog, positional[0])
	if err != nil {
		return err
	}
	problem, err := m.ProblemByRef(positional[1])
	if err != nil {
		return err
	}

	var answer string
	if len(positional) == 3 {
		answer, err = readAnswer(positional[2], env.Stdin)
		if err != nil {
			return err
		}
	} else {
		answer = problem.Solution
		log.Debug().Msg("no answer given, running the stored solution")
	}

	printProblem(env.Stdout, problem, flags.hint)

	runner := env.NewRunner(cfg.Runner.Command, cfg.Runner.TimeoutDuration())
	start := env.Now()
	execution, err := runner.Run(ctx, answer)
	if err != nil {
		if errors.Is(err, lessonmark.ErrRunnerUnavailable) {
			return fmt.Errorf("%w%s", err, hints.ForRunnerUnavailable(cfg.Runner.Command))
		}
		return err
	}
	log.Debug().Dur("elapsed", env.Now().Sub(start).Round(time.Millisecond)).Msg("executed")

	printExecution(env.Stdout, execution)

	if !execution.Passed(problem.ExpectedOutput) {
		fmt.Fprintf(env.Stdout, "%s %s\n", markMismatch, lessonmark.VerdictMismatch)
		fmt.Fprintf(env.Stdout, "expected:\n%s\n", problem.ExpectedOutput)
		if execution.Err != nil && execution.Err.TimedOut {
			return fmt.Errorf("%w: %w%s", ErrAnswerMismatch, execution.Err, hints.ForTimeout())
		}
		return ErrAnswerMismatch
	}
	fmt.Fprintf(env.Stdout, "%s %s\n", markMatch, lessonmark.VerdictMatch)
	return nil
}

// readAnswer reads code from a file, or from stdin for "-".
func readAnswer(ref string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if ref == stdioName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(ref) // #nosec G304 -- user-provided answer file
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// printProblem prints the title and the description as plain text.
func printProblem(w io.Writer, p *content.Problem, withHint bool) {
	fmt.Fprintf(w, "%d. %s\n", p.ID, p.Title)
	if p.Description != "" {
		fmt.Fprintln(w, lessonmark.SpansText(lessonmark.Tokenize(p.Description)))
	}
	if withHint && p.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", p.Hint)
	}
	fmt.Fprintln(w)
}

// printExecution prints captured output, then the error if any.
func printExecution(w io.Writer, e *lessonmark.Execution) {
	for _, line := range e.Output {
		fmt.Fprintln(w, line)
	}
	if e.Err != nil {
		fmt.Fprintf(w, "%s %v\n", markMismatch, e.Err)
	}
}
