package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notemark <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render notes in full")
	fmt.Fprintln(w, "  list        List notes with a short summary")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'notemark help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notemark render <path>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render note files, or every note under a directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  path    Note file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --include <glob>      Notes to include (repeatable)")
	fmt.Fprintln(w, "      --exclude <glob>      Notes to exclude (repeatable)")
	fmt.Fprintln(w, "      --watch               Re-render a single note when it changes")
	fmt.Fprintln(w)
	printStyleUsage(w)
	fmt.Fprintln(w)
	printOutputControlUsage(w)
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notemark list <path>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List notes with their date and a line-limited summary.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --include <glob>      Notes to include (repeatable)")
	fmt.Fprintln(w, "      --exclude <glob>      Notes to exclude (repeatable)")
	fmt.Fprintln(w)
	printStyleUsage(w)
	fmt.Fprintln(w, "      --date-format <s>     Date: preset or tokens (default: iso)")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Written] MMM D")
	fmt.Fprintln(w)
	printOutputControlUsage(w)
}

func printStyleUsage(w io.Writer) {
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -f, --format <s>          Format: text, ansi, html, json, yaml")
	fmt.Fprintln(w, "  -t, --theme <s>           Color theme (default: github)")
	fmt.Fprintln(w, "  -n, --lines <n>           Maximum display lines (0 = unbounded)")
	fmt.Fprintln(w, "      --width <n>           Soft wrap width (0 = no wrap)")
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
// Returns false for unknown commands.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: notemark version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: notemark help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
