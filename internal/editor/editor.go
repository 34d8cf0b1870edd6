// Package editor launches the user's text editor on flowmind files.
package editor

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

// Open runs the user's editor on path with the terminal attached and waits
// for it to exit.
// $EDITOR may carry arguments, e.g. "code --wait".
func Open(path string) error {
	return run(Command(), path, os.Stdin, os.Stdout, os.Stderr)
}

func run(editor []string, path string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.Command(editor[0], append(editor[1:], path)...) //nolint:gosec // editor comes from the user's environment
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", editor[0])
	}
	return nil
}

// Command returns the editor command line.
// Fallback chain: $VISUAL, $EDITOR, nano, vi.
func Command() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return []string{"nano"}
	}
	return []string{"vi"}
}
