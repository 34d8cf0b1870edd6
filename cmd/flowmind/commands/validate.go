package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/guncekal/text-to-processflow/internal/decode"
	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/logging"
	"github.com/guncekal/text-to-processflow/internal/report"
	"github.com/guncekal/text-to-processflow/pkg/fileutil"
)

var (
	validateFormat      string
	validateOut         string
	validateNoWrite     bool
	validateInteractive bool
	validateInputFormat string
)

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "",
		"report format: text, json, yaml (default from config report_format)")
	validateCmd.Flags().StringVarP(&validateOut, "out", "o", "",
		"write the report to this path (default from config output)")
	validateCmd.Flags().BoolVar(&validateNoWrite, "no-write", false,
		"do not write the report file")
	validateCmd.Flags().BoolVarP(&validateInteractive, "interactive", "i", false,
		"browse validation errors in a fuzzy finder")
	validateCmd.Flags().StringVar(&validateInputFormat, "input-format", "",
		"input format: auto, json, yaml, toml (default from config input_format)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a Process DSL document",
	Long: `Validate a Process DSL document against the DSL schema.

Every problem is reported, not just the first. Each record names the entity
(payload, node or edge), the node id when known, the field, an error code,
and the expected and received values. The report is printed and also
written to the output file (JSON, or YAML for .yaml/.yml paths).

Exits with status 1 when the document is invalid.`,
	Example: `  # Validate and write output.json
  flowmind validate flow.json

  # Print the report as JSON and skip the report file
  flowmind validate flow.json --format json --no-write

  # Browse errors interactively
  flowmind validate flow.yaml -i`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.FromContext(cmd.Context())

	format, err := report.ParseFormat(firstNonEmpty(validateFormat, cfg.ReportFormat))
	if err != nil {
		return errors.NewUserError(err, "Use --format text, json or yaml")
	}

	tree, err := loadDocument(cmd, path, validateInputFormat)
	if err != nil {
		return err
	}

	res := dsl.Validate(tree)
	rep := report.New(path, res)
	logger.Info("validated document",
		"source", path,
		"run_id", rep.RunID,
		"valid", rep.Valid,
		"errors", rep.ErrorCount)
	for _, rec := range rep.Errors {
		logger.Log(cmd.Context(), logging.LevelTrace, "validation record",
			"entity", rec.Entity, "entity_id", rec.ID(), "field", rec.Field, "code", rec.Code)
	}

	if !validateNoWrite {
		out := firstNonEmpty(validateOut, cfg.Output)
		if err := fileutil.AtomicWriteEncoded(out, rep); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing report to %s", out),
				"Check that the output directory is writable")
		}
		logger.Info("wrote report", "path", out)
	}

	if err := printReport(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}

	if !rep.Valid {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrValidationFailed, "%s: %d error(s)", path, rep.ErrorCount),
			errors.ExitUser)
	}
	return nil
}

// printReport writes rep to w, or opens the interactive browser when asked.
// A valid report is not printed in quiet mode.
func printReport(w io.Writer, rep *report.Report, format report.Format) error {
	if validateInteractive && !rep.Valid {
		return browseRecords(w, rep.Errors)
	}
	if quiet && rep.Valid {
		return nil
	}
	if err := report.NewReporter(w, format).Report(rep); err != nil {
		return errors.Wrap(err, "printing report")
	}
	return nil
}

// loadDocument decodes the file at path into a document tree, turning
// read and syntax failures into user errors.
func loadDocument(cmd *cobra.Command, path, flagFormat string) (dsl.Value, error) {
	inFormat, err := decode.ParseFormat(firstNonEmpty(flagFormat, cfg.InputFormat))
	if err != nil {
		return dsl.Null(), errors.NewUserError(err, "Use --input-format auto, json, yaml or toml")
	}

	tree, used, err := decode.File(path, inFormat)
	switch {
	case err == nil:
		logging.FromContext(cmd.Context()).Debug("decoded document",
			slog.String("source", path), slog.String("format", string(used)))
		return tree, nil
	case errors.Is(err, errors.ErrNotFound):
		return dsl.Null(), errors.NewUserError(err, "Check the path and try again")
	case errors.Is(err, errors.ErrDecode):
		return dsl.Null(), errors.NewUserError(err,
			fmt.Sprintf("Fix the %s syntax or pass --input-format", used))
	default:
		return dsl.Null(), errors.NewSystemError(err, "")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
