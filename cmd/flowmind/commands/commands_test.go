package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const validDocument = `{
  "nodes": [
    {"id": "EV01", "type": "event", "label": "Invoice received", "responsible": "Accounting",
     "confidence": "high", "reference": {"kind": "text", "value": ["When an invoice arrives"]}},
    {"id": "AC01", "type": "activity", "label": "Check invoice", "responsible": "Accounting",
     "confidence": "mid", "reference": {"kind": "text", "value": ["accounting checks it"]}},
    {"id": "DE01", "type": "decision", "label": "Amount over limit?", "responsible": "Manager",
     "confidence": "low", "reference": {"kind": "inferred_boundary", "value": ["limit"]}}
  ],
  "edges": [
    {"from": "EV01", "to": "AC01"},
    {"from": "AC01", "to": "DE01", "condition": "checked"}
  ]
}`

const invalidDocument = `{
  "nodes": [
    {"id": "EV01", "type": "activity", "label": "Start", "responsible": "Ops",
     "confidence": "sure", "reference": {"kind": "text", "value": ["x"]}}
  ],
  "edges": [{"from": "EV01"}]
}`

// result captures one command execution.
type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command in a fresh working directory with flag
// state reset.
func execute(t *testing.T, args ...string) result {
	t.Helper()

	resetFlags()
	t.Setenv("FLOWMIND_CONFIG_DIR", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func resetFlags() {
	verbosity, quiet, logFormat, logFile, configFile = 0, false, "text", "", ""
	validateFormat, validateOut, validateNoWrite, validateInteractive, validateInputFormat = "", "", false, false, ""
	renderOut, renderDirection, renderInputFormat = "", "", ""
	draftOut, draftName, draftLanguage = "", "", ""
	_ = genDocCmd.Flags().Set("dir", "")
}

// workdir switches into a temporary directory and writes files into it.
func workdir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}
