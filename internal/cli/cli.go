package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/specialistvlad/splot2hlvl/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError is the exit code for invalid invocations.
const usageError = 2

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("splot2hlvl", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
splot2hlvl - Translate SPLOT (SXFM) feature models into HLVL programs.

Usage:
  splot2hlvl [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a single SXFM .xml file or a directory containing .xml files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.StringP("input", "i", "", "Path to the SXFM file or directory.")
	outputFlag := flagSet.StringP("output", "o", "", "Output file or directory. Defaults to standard output.")
	targetFlag := flagSet.StringP("target", "t", "", "Target name of the generated model. Defaults to the input file name.")
	templatesFlag := flagSet.String("templates", "", "Path to an HCL file overriding the program header, labels and operations.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: usageError, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *inputFlag
	switch {
	case path != "" && flagSet.NArg() > 0:
		return nil, false, &ExitError{Code: usageError, Message: "input given both as --input and as an argument"}
	case path == "" && flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: usageError, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Input path determined.", "path", path)

	if path == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		InputPath:     path,
		OutputPath:    *outputFlag,
		TargetName:    *targetFlag,
		TemplatesPath: *templatesFlag,
		LogFormat:     strings.ToLower(*logFormatFlag),
		LogLevel:      strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: usageError, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
