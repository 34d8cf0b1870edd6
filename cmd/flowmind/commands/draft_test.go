package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
)

func TestDraft_WritesDefaultOutput(t *testing.T) {
	dir := workdir(t, map[string]string{
		"process.txt": "\n  When an invoice arrives, accounting checks it.  \n",
	})

	res := execute(t, "draft", "process.txt")
	require.NoError(t, res.err)

	out := filepath.Join(dir, "output.json")
	abs, err := filepath.Abs("output.json")
	require.NoError(t, err)
	assert.Equal(t, "Wrote: "+abs+"\n", res.stdout)

	d := readJSON(t, out)
	process := d["process"].(map[string]any)
	assert.Equal(t, "FlowMind Draft", process["name"])
	assert.Equal(t, "free_text", process["source_type"])
	assert.Equal(t, "en", process["language"])
	assert.Equal(t, "1.0", process["dsl_version"])
	assert.Equal(t, "When an invoice arrives, accounting checks it.", d["input_preview"])
	assert.Equal(t, []any{}, d["nodes"])
	assert.Equal(t, []any{}, d["edges"])
	assert.Equal(t, "Pipeline skeleton is ready. Next: LLM extraction + validation.", d["message"])

	// A draft is itself a valid document.
	assert.True(t, dsl.ValidateAny(d).Valid)
}

func TestDraft_FlagsAndConfig(t *testing.T) {
	dir := workdir(t, map[string]string{
		"process.txt": strings.Repeat("ä", 50),
		"config.yaml": "draft:\n  language: de\n  preview_length: 10\n",
	})

	res := execute(t, "draft", "process.txt", "--name", "Rechnung", "--out", "draft.yaml")
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(dir, "draft.yaml"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "name: Rechnung")
	assert.Contains(t, content, "language: de")
	assert.Contains(t, content, "input_preview: "+strings.Repeat("ä", 10)+"\n")
}

func TestDraft_MissingAndBlankInput(t *testing.T) {
	workdir(t, map[string]string{"blank.txt": " \n\t\n"})

	res := execute(t, "draft", "missing.txt")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, errors.ErrNotFound))
	assert.Contains(t, res.err.Error(), "input file not found")

	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))

	res = execute(t, "draft", "blank.txt", "--out", "blank.json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "process description is empty")
	d := readJSON(t, "blank.json")
	assert.Equal(t, "", d["input_preview"])
	assert.Equal(t, []any{}, d["nodes"])
}

func TestDraft_FrontMatter(t *testing.T) {
	dir := workdir(t, map[string]string{
		"process.md": "---\nname: Onboarding\nlanguage: fr\n---\nRH envoie le contrat.\n",
	})

	res := execute(t, "draft", "process.md", "--language", "de", "--out", "draft.json")
	require.NoError(t, res.err)

	d := readJSON(t, filepath.Join(dir, "draft.json"))
	process := d["process"].(map[string]any)
	assert.Equal(t, "Onboarding", process["name"])
	assert.Equal(t, "de", process["language"])
	assert.Equal(t, "RH envoie le contrat.", d["input_preview"])
}
