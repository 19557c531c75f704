package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/errdefgen/internal/app"
	"github.com/specialistvlad/errdefgen/internal/cli"
	"github.com/specialistvlad/errdefgen/internal/hcl"
)

// main is the entrypoint for the errdefgen command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run holds the program logic so it can be tested without exiting. Failures
// of the run itself are rendered as diagnostics on errW and reported as an
// *cli.ExitError without a message.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	a := app.NewApp(outW, errW, appConfig, hcl.NewLoader(), hcl.NewWriter())
	if err := a.Run(ctx); err != nil {
		if werr := a.WriteDiagnostics(errW, err); werr != nil {
			return fmt.Errorf("%w (rendering diagnostics: %v)", err, werr)
		}
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}
