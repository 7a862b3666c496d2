// Package cli parses the flag surface. Parsing only happens when arguments
// were supplied; the caller applies precedence (delete, then help, then
// version) and runs the forecast flow when no flag is set.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

const Version = "1.0.0"

// ErrUsage signals that the parser already reported the problem and usage
// text to the user; main only needs to pick the exit code.
var ErrUsage = errors.New("invalid usage")

type Options struct {
	Delete  bool `short:"d" help:"Delete the stored API key."`
	Help    bool `short:"h" help:"Show usage information."`
	Version bool `short:"v" help:"Show version and copyright."`
}

// newParser suppresses kong's built-in help so that --help behaves as an
// ordinary boolean and takes its place in the precedence order.
func newParser(opts *Options, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(opts,
		kong.Name("brightcast"),
		kong.Description("Weather forecast for Bright, VIC from the OpenWeatherMap One Call API."),
		kong.NoDefaultHelp(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
}

// Parse parses args. On an unrecognized token it prints usage to stdout and
// a diagnostic naming the token to stderr, then returns ErrUsage.
func Parse(args []string, stdout, stderr io.Writer) (Options, error) {
	var opts Options
	parser, err := newParser(&opts, stdout, stderr)
	if err != nil {
		return Options{}, fmt.Errorf("build parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		Usage(stdout)
		fmt.Fprintf(stderr, "brightcast: error: %v\n", err)
		return Options{}, ErrUsage
	}
	return opts, nil
}

// Usage renders the usage text (program name, description, flag table).
func Usage(w io.Writer) error {
	var opts Options
	parser, err := newParser(&opts, w, w)
	if err != nil {
		return fmt.Errorf("build parser: %w", err)
	}
	ctx, err := parser.Parse([]string{})
	if err != nil {
		return fmt.Errorf("render usage: %w", err)
	}
	return kong.DefaultHelpPrinter(kong.HelpOptions{ValueFormatter: kong.DefaultHelpValueFormatter}, ctx)
}

// PrintVersion writes the version/copyright string.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "brightcast %s\nCopyright (c) 2026 Lachlan Donald. MIT licence.\n", Version)
}
