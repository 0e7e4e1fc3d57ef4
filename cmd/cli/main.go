package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/splot2hlvl/internal/app"
	"github.com/specialistvlad/splot2hlvl/internal/cli"
	"github.com/specialistvlad/splot2hlvl/internal/sxfm"
)

// main is the entrypoint for the splot2hlvl application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Programs go to outW, usage and logs to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Broken built-in templates panic; report them like any other failure.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	converter, err := app.New(outW, errW, appConfig, sxfm.NewLoader())
	if err != nil {
		return err
	}

	return converter.Run(context.Background())
}
