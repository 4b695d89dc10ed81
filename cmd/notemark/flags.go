package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds presentation flags. The *Set fields record whether a
// numeric flag was given, since zero is a meaningful value.
type styleFlags struct {
	format   string
	theme    string
	lines    int
	width    int
	linesSet bool
	widthSet bool
}

// discoveryFlags holds note discovery flags.
type discoveryFlags struct {
	include []string
	exclude []string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common    commonFlags
	style     styleFlags
	discovery discoveryFlags
	output    string
	workers   int
	watch     bool
}

// listFlags holds all flags for the list command.
type listFlags struct {
	common     commonFlags
	style      styleFlags
	discovery  discoveryFlags
	workers    int
	dateFormat string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds presentation flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "output format: text, ansi, html, json, yaml")
	fs.StringVarP(&f.theme, "theme", "t", "", "color theme name")
	fs.IntVarP(&f.lines, "lines", "n", 0, "maximum display lines (0 = unbounded)")
	fs.IntVar(&f.width, "width", 0, "soft wrap width in characters (0 = no wrap)")
}

// addDiscoveryFlags adds note discovery flags to a FlagSet.
func addDiscoveryFlags(fs *flag.FlagSet, f *discoveryFlags) {
	fs.StringSliceVar(&f.include, "include", nil, "glob patterns of notes to include")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "glob patterns of notes to exclude")
}

// buildRenderFlagSet registers render flags on a new FlagSet.
func buildRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: stdout)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "re-render a single note when it changes")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addDiscoveryFlags(fs, &f.discovery)

	return fs
}

// buildListFlagSet registers list flags on a new FlagSet.
func buildListFlagSet(f *listFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.dateFormat, "date-format", "", "date format preset or tokens")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addDiscoveryFlags(fs, &f.discovery)

	return fs
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	fs := buildRenderFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRenderUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	f.style.linesSet = fs.Changed("lines")
	f.style.widthSet = fs.Changed("width")

	return f, fs.Args(), nil
}

// parseListFlags parses list command flags and returns positional args.
func parseListFlags(args []string, stderr io.Writer) (*listFlags, []string, error) {
	f := &listFlags{}
	fs := buildListFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printListUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	f.style.linesSet = fs.Changed("lines")
	f.style.widthSet = fs.Changed("width")

	return f, fs.Args(), nil
}

// parse runs fs.Parse, passing flag.ErrHelp through unchanged.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}
