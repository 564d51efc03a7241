package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/symbolgen/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("symbolgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
symbolgen - Generate alphabets of configurable symbols.

Usage:
  symbolgen [options] [SHEET_PATH]

Arguments:
  SHEET_PATH
    Path to a .hcl or .yaml sheet definition, or a directory of them.
    The built-in sheet is used when omitted.

Options:
`)
		flagSet.PrintDefaults()
	}

	sheetFlag := flagSet.String("sheet", "", "Path to the sheet definition file or directory.")
	sFlag := flagSet.String("s", "", "Path to the sheet definition file or directory (shorthand).")
	outputFlag := flagSet.String("output", "", "Output file, stdout if not present.")
	oFlag := flagSet.String("o", "", "Output file (shorthand).")
	formatFlag := flagSet.String("format", "", "Output format: 'png' or 'svg'. Inferred from the output file when omitted.")
	symmetryFlag := flagSet.String("symmetry", "", "Symmetry for every row: 'asymmetric', 'horizontal', 'vertical' or 'horizontalvertical'.")
	seedOffsetFlag := flagSet.Uint64("seed-offset", 0, "Seed of the first glyph; overrides the sheet definition when set.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent generation workers. 0 uses one per CPU.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	traceFileFlag := flagSet.String("trace-file", "", "Write OpenTelemetry spans as JSON to this file.")
	servePortFlag := flagSet.Int("serve-port", 0, "Serve sheets over HTTP on this port instead of rendering once. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one sheet path, got %d", flagSet.NArg())}
	}

	path := firstNonEmpty(*sheetFlag, *sFlag, flagSet.Arg(0))
	slog.Debug("Sheet path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	var seedOffset *uint64
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed-offset" {
			seedOffset = seedOffsetFlag
		}
	})
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SheetPath:  path,
		OutputPath: firstNonEmpty(*outputFlag, *oFlag),
		Format:     strings.ToLower(*formatFlag),
		Symmetry:   *symmetryFlag,
		SeedOffset: seedOffset,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		TraceFile:  *traceFileFlag,
		Workers:    *workersFlag,
		ServePort:  *servePortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
