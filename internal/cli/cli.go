package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/errdefgen/internal/app"
	"golang.org/x/term"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated config,
// whether the program should exit cleanly right away, or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("errdefgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
errdefgen - generates Go error types from compact declarations.

Usage:
  errdefgen [options] PATH

Arguments:
  PATH
    A .hcl manifest, a directory of manifests, or a single .errdef file.
    A single .errdef file needs -type and -package.

Options:
`)
		flagSet.PrintDefaults()
	}

	typeFlag := flagSet.String("type", "", "Name of the generated error interface (single .errdef only).")
	packageFlag := flagSet.String("package", "", "Package of the generated file (single .errdef only).")
	outputFlag := flagSet.String("o", "", "Output file. Defaults to <snake_type>_gen.go next to the definition.")
	prefixFlag := flagSet.String("prefix", "", "Prefix for variant struct names.")
	importsFlag := flagSet.String("imports", "", "Comma-separated extra import paths for the generated file.")
	fmtFlag := flagSet.Bool("fmt", false, "Rewrite .errdef files in canonical form instead of generating code.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print results to stdout instead of writing files.")
	initFlag := flagSet.Bool("init", false, "Write a manifest for a single .errdef file from the other flags.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	colorFlag := flagSet.String("color", "auto", "Colorize diagnostics. Options: 'auto', 'always', 'never'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("expected a single path, got %d", flagSet.NArg())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var color bool
	switch strings.ToLower(*colorFlag) {
	case "always":
		color = true
	case "never":
	case "auto":
		color = isTerminal(output)
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid color: must be 'auto', 'always', or 'never'"}
	}

	cfg, err := app.NewConfig(app.Config{
		Path:          flagSet.Arg(0),
		TypeName:      *typeFlag,
		Package:       *packageFlag,
		Output:        *outputFlag,
		VariantPrefix: *prefixFlag,
		Imports:       splitList(*importsFlag),
		Format:        *fmtFlag,
		DryRun:        *dryRunFlag,
		Init:          *initFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		Color:         color,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "path", cfg.Path)
	return cfg, false, nil
}

// isTerminal reports whether w is a terminal, so diagnostics printed to it
// can use color.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
