package placeid

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/sfomuseum/go-flags/flagset"
)

// Run executes the "extract place ID" application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the "extract place ID" application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "STREETVIEW")

	if err != nil {
		return fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	if verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	switch mode {
	case "cli":

		if fs.Arg(0) == "" {
			fs.Usage()
			return fmt.Errorf("Missing Google Maps URL")
		}

		return runCommandLine(ctx, fs.Arg(0))

	case "lambda":
		return runLambda(ctx)
	default:
		return fmt.Errorf("Invalid or unsupported mode")
	}
}
