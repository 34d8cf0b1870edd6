package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/guncekal/text-to-processflow/internal/draft"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/logging"
	"github.com/guncekal/text-to-processflow/pkg/fileutil"
)

var (
	draftOut      string
	draftName     string
	draftLanguage string
)

func init() {
	draftCmd.Flags().StringVarP(&draftOut, "out", "o", "",
		"path to write the draft (default from config output)")
	draftCmd.Flags().StringVar(&draftName, "name", "",
		"process name (default from config draft.name)")
	draftCmd.Flags().StringVar(&draftLanguage, "language", "",
		"language of the description (default from config draft.language)")
	rootCmd.AddCommand(draftCmd)
}

var draftCmd = &cobra.Command{
	Use:   "draft <input.txt>",
	Short: "Create a draft document from a text description",
	Long: `Create a draft Process DSL document from a plain-text process description.

The draft carries the process header and a preview of the text with empty
node and edge lists, ready to be filled in and validated.

The description may start with a YAML front matter block setting the
process name and language. Flags take precedence over it, and it takes
precedence over the configuration file.`,
	Example: `  # Write output.json
  flowmind draft process.txt

  # Name the process and write YAML
  flowmind draft process.txt --name "Invoice approval" --out draft.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

func runDraft(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := logging.FromContext(cmd.Context())

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "Check the path and try again")
		}
		return errors.NewSystemError(err, "")
	}

	header, text, err := draft.Parse(data)
	if err != nil {
		return errors.NewUserError(errors.Wrapf(err, "drafting %s", path),
			"Close the front matter block with a line containing only ---")
	}

	d := draft.New(text, draft.Options{
		Name:          firstNonEmpty(draftName, header.Name, cfg.Draft.Name),
		Language:      firstNonEmpty(draftLanguage, header.Language, cfg.Draft.Language),
		PreviewLength: cfg.Draft.PreviewLength,
	})
	if d.InputPreview == "" {
		logger.Warn("process description is empty", "source", path)
	}

	out := firstNonEmpty(draftOut, cfg.Output)
	if err := fileutil.AtomicWriteEncoded(out, d); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "writing draft to %s", out),
			"Check that the output directory is writable")
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		abs = out
	}
	logger.Info("wrote draft", "source", path, "path", abs)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", abs)
	return nil
}
