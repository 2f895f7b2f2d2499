package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "render":
		err = runRender(ctx, rest, env)
	case "tree":
		err = runTree(rest, env)
	case "export":
		err = runExport(ctx, rest, env)
	case "check":
		err = runCheck(ctx, rest, env)
	case "list":
		err = runList(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "lessonmark %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

// newLogger builds the diagnostic logger for one command run.
// Errors are always printed by runMain; the logger carries progress and timing.
func newLogger(w io.Writer, f commonFlags) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case f.quiet:
		level = zerolog.ErrorLevel
	case f.verbose:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level)
}

var maxprocsOnce sync.Once

// tuneMaxProcs sets GOMAXPROCS from the container CPU quota before a pool is sized.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func tuneMaxProcs(log zerolog.Logger) {
	maxprocsOnce.Do(func() {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			log.Debug().Msgf(format, args...)
		}))
	})
}
