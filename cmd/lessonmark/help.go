package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a lesson file, module or topic to HTML or PDF")
	fmt.Fprintln(w, "  export     Render one handout per module")
	fmt.Fprintln(w, "  tree       Print the parsed block tree of a lesson")
	fmt.Fprintln(w, "  check      Run an answer to a problem and compare its output")
	fmt.Fprintln(w, "  list       List modules, or the topics and problems of a module")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'lessonmark help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --catalog <dir>       Directory of lesson modules (default: bundled)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

func printLessonRefUsage(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  lesson   A lesson file (.txt, .lesson, .md), \"-\" for stdin,")
	fmt.Fprintln(w, "           a module id (all topics), or module/topic")
}

func printHandoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (\"-\" = stdout)")
	fmt.Fprintln(w, "      --pdf                 Write PDF instead of HTML (needs Chrome)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Style: lesson, print, or a custom style")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory whose styles/ override built-ins")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark render <lesson> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a lesson to an HTML page or a PDF handout.")
	fmt.Fprintln(w)
	printLessonRefUsage(w)
	fmt.Fprintln(w)
	printHandoutUsage(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark export [module...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one handout per module (all modules when none is named).")
	fmt.Fprintln(w)
	printHandoutUsage(w)
	fmt.Fprintln(w, "Parallelism:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel browsers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printTreeUsage prints usage for the tree command.
func printTreeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark tree <lesson> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the blocks and inline spans a lesson parses into.")
	fmt.Fprintln(w)
	printLessonRefUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          yaml (block tree) or lesson (normalized markup)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark check <module> <problem> [file|-] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run JavaScript with node and compare what it logs with the expected")
	fmt.Fprintln(w, "output. Without a file, the stored solution is run. An uncaught error")
	fmt.Fprintln(w, "fails the check even when the logged output matches.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Runner:")
	fmt.Fprintln(w, "      --node <path>         Node executable (default: node on PATH)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Execution timeout (default: 5s)")
	fmt.Fprintln(w, "      --hint                Print the problem hint")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lessonmark list [module] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List modules, or the topics and problems of one module.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "tree":
		printTreeUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: lessonmark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: lessonmark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
