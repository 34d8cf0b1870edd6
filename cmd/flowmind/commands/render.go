package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/logging"
	"github.com/guncekal/text-to-processflow/internal/render"
	"github.com/guncekal/text-to-processflow/internal/report"
	"github.com/guncekal/text-to-processflow/pkg/fileutil"
)

var (
	renderOut         string
	renderDirection   string
	renderInputFormat string
)

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "",
		"write the flowchart to this path instead of stdout")
	renderCmd.Flags().StringVarP(&renderDirection, "direction", "d", "",
		"flowchart direction: TD, LR, BT, RL (default from config render.direction)")
	renderCmd.Flags().StringVar(&renderInputFormat, "input-format", "",
		"input format: auto, json, yaml, toml (default from config input_format)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render a Process DSL document as a Mermaid flowchart",
	Long: `Render a Process DSL document as a Mermaid flowchart.

The document is validated first. Invalid documents are not rendered; the
validation report is printed to stderr and the command exits with status 1.

Events are drawn as stadiums, activities as rectangles and decisions as
rhombi. Edge conditions become edge labels.`,
	Example: `  # Print a flowchart
  flowmind render flow.json

  # Left-to-right flowchart written to a file
  flowmind render flow.yaml --direction LR --out flow.mmd`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.FromContext(cmd.Context())

	dir, err := render.ParseDirection(firstNonEmpty(renderDirection, cfg.Render.Direction))
	if err != nil {
		return errors.NewUserError(err, "Use --direction TD, LR, BT or RL")
	}

	tree, err := loadDocument(cmd, path, renderInputFormat)
	if err != nil {
		return err
	}

	doc, res, err := dsl.Decode(tree)
	if err != nil {
		rep := report.New(path, res)
		if perr := report.NewReporter(cmd.ErrOrStderr(), report.FormatText).Report(rep); perr != nil {
			return errors.Wrap(perr, "printing report")
		}
		return errors.NewUserError(errors.Wrapf(err, "rendering %s", path),
			"Run: flowmind validate "+path)
	}

	chart, err := render.MermaidString(doc, render.Options{Direction: dir})
	if err != nil {
		return err
	}
	logger.Info("rendered flowchart", "source", path, "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	if renderOut == "" {
		_, werr := fmt.Fprint(cmd.OutOrStdout(), chart)
		return errors.Wrap(werr, "writing flowchart")
	}
	if err := fileutil.AtomicWriteFile(renderOut, []byte(chart), fileutil.DefaultFilePerm); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing flowchart to %s", renderOut), "")
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", renderOut)
	}
	return nil
}
