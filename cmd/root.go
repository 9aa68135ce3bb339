// Package cmd implements the CLI command structure for taskdeck.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nvander/taskdeck/internal/config"
	"github.com/nvander/taskdeck/internal/loop"
	"github.com/nvander/taskdeck/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskdeck CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskdeck", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; default is the interactive session.
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		// An unrecognized first argument may be a task file path.
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			cfg.TaskFile = subcommand
			return runCommand(ctx, cfg, remainingArgs)
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// runCommand starts the interactive session.
func runCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		// Positional argument overrides the configured task file.
		cfg.TaskFile = args[0]
	}
	l := loop.New(cfg, os.Stdin, os.Stdout, newLogger(cfg))
	return l.Run(ctx)
}

// tuiCommand starts the read-only terminal viewer.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 0 {
		cfg.TaskFile = args[0]
	}
	return ui.RunTUI(ctx, cfg.TaskFile)
}

func versionCommand() error {
	fmt.Printf("taskdeck version %s\n", Version)
	return nil
}

// newLogger builds the leveled console logger from config.
func newLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLogLevel(cfg.LogLevel),
		Formatter:       parseLogFormatter(cfg.LogFormat),
		ReportTimestamp: false,
		Prefix:          "taskdeck",
	})
}

// parseLogLevel parses a string log level to a charmbracelet/log Level.
func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// parseLogFormatter parses a string formatter name to a charmbracelet/log Formatter.
func parseLogFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskdeck - An interactive terminal task manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskdeck [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run [file]    Start the interactive session (default command)")
	fmt.Fprintln(w, "  tui [file]    Launch the read-only terminal viewer")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TASKDECK_FILE        Path to task file")
	fmt.Fprintln(w, "  TASKDECK_LOG_LEVEL   Log level (debug|info|warn|error)")
	fmt.Fprintln(w, "  TASKDECK_LOG_FORMAT  Log format (text|json|logfmt)")
	fmt.Fprintln(w, "  NO_COLOR             Disable styled output")
}
