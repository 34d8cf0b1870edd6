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

func TestRender_Stdout(t *testing.T) {
	workdir(t, map[string]string{"flow.json": validDocument})

	res := execute(t, "render", "flow.json")
	require.NoError(t, res.err)

	want := `flowchart TD
    EV01(["Invoice received"])
    AC01["Check invoice"]
    DE01{"Amount over limit?"}
    EV01 --> AC01
    AC01 -->|"checked"| DE01
`
	assert.Equal(t, want, res.stdout)
}

func TestRender_FileAndDirection(t *testing.T) {
	dir := workdir(t, map[string]string{"flow.json": validDocument})

	res := execute(t, "render", "flow.json", "--direction", "lr", "--out", "charts/flow.mmd")
	require.NoError(t, res.err)
	assert.Equal(t, "Wrote: charts/flow.mmd\n", res.stdout)

	data, err := os.ReadFile(filepath.Join(dir, "charts", "flow.mmd"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "flowchart LR\n"))
}

func TestRender_DirectionFromConfig(t *testing.T) {
	workdir(t, map[string]string{
		"flow.json":   validDocument,
		"config.yaml": "render:\n  direction: BT\n",
	})

	res := execute(t, "render", "flow.json")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "flowchart BT\n"))
}

func TestRender_InvalidDocument(t *testing.T) {
	workdir(t, map[string]string{"flow.json": invalidDocument})

	res := execute(t, "render", "flow.json")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, dsl.ErrInvalidDocument))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Validation failed: 3 error(s) (flow.json)")
}

func TestRender_BadDirection(t *testing.T) {
	workdir(t, map[string]string{"flow.json": validDocument})

	res := execute(t, "render", "flow.json", "--direction", "sideways")
	require.Error(t, res.err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(res.err, &exitErr))
	assert.Contains(t, exitErr.Suggestion, "--direction")
}
