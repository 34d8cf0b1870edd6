// Package commands implements the CLI commands for flowmind.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guncekal/text-to-processflow/cmd"
	"github.com/guncekal/text-to-processflow/internal/config"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/logging"
)

// debugEnvVar raises the log level when no -v flag is given.
const debugEnvVar = "FLOWMIND_DEBUG"

var (
	// verbosity holds the count of -v flags.
	verbosity int
	// quiet holds the value of the -q/--quiet flag.
	quiet bool
	// logFormat holds the value of the --log-format flag.
	logFormat string
	// logFile holds the path to the log file.
	logFile string
	// configFile holds the value of the --config flag.
	configFile string
)

var (
	// cfg is the effective configuration; defaults until initConfig runs.
	cfg = config.Default()
	// configLoadErr holds any error that occurred during config loading.
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or ~/.config/flowmind/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("flowmind version {{.Version}}\n")

	// Errors are printed by main so the suggestion can follow them.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configFile)
	if err != nil {
		configLoadErr = err
		cfg = config.Default()
		return
	}
	configLoadErr = nil
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "flowmind",
	Short: "Validate and render Process DSL documents",
	Long: `flowmind turns process descriptions into structured flows.

A Process DSL document lists the nodes of a business process (events,
activities and decisions, each with a responsible party, a confidence
level and a reference to its source evidence) and the edges between them.
flowmind checks documents against the DSL schema, reports every problem
it finds, and renders valid documents as Mermaid flowcharts.`,
	Example: `  # Validate a document and write the report to output.json
  flowmind validate flow.json

  # Validate a YAML document without writing a report
  flowmind validate flow.yaml --no-write --format json

  # Render a flowchart
  flowmind render flow.json --direction LR

  # Create a draft from a text description
  flowmind draft process.txt --out draft.json`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"),
			"Pick one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv(debugEnvVar) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	handler := primary
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"),
				"Check that the --log-file directory exists and is writable")
		}
		handler = logging.NewMultiHandler(primary, slog.NewJSONHandler(f, opts))
	}

	// Report colors follow stdout, not the log destination.
	color.NoColor = !logging.SupportsColor(cmd.OutOrStdout())

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a broken configuration file. The config command is
// exempt so the effective values can still be inspected.
func checkConfig(cmd *cobra.Command) error {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "config", "gen-doc":
			return nil
		}
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
