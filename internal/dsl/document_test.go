package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

func TestDecode_Valid(t *testing.T) {
	start := node(" EV01 ", "event")
	review := node("DE01", "decision")
	review["reference"] = map[string]any{
		"kind":  "doc_clause",
		"value": []any{"4.1", "4.2"},
	}

	d, res, err := Decode(doc(
		[]any{start, review},
		[]any{
			map[string]any{"from": " EV01 ", "to": "DE01\n"},
			map[string]any{"from": "DE01", "to": "AC09", "condition": "rejected"},
		},
	))
	require.NoError(t, err)
	assert.True(t, res.Valid)

	require.Len(t, d.Nodes, 2)
	assert.Equal(t, "EV01", d.Nodes[0].ID)
	assert.Equal(t, TypeEvent, d.Nodes[0].Type)
	assert.Equal(t, TypeEvent, d.Nodes[0].Kind())
	assert.Equal(t, ConfidenceHigh, d.Nodes[0].Confidence)
	assert.Equal(t, ReferenceDocClause, d.Nodes[1].Reference.Kind)
	assert.Equal(t, []string{"4.1", "4.2"}, d.Nodes[1].Reference.Value)

	require.Len(t, d.Edges, 2)
	assert.Equal(t, Edge{From: "EV01", To: "DE01"}, d.Edges[0])
	assert.Equal(t, Edge{From: "EV01", To: "DE01"}, d.Edges[0])
	assert.Equal(t, "rejected", d.Edges[1].Condition)

	n, ok := d.Node("DE01")
	assert.True(t, ok)
	assert.Equal(t, TypeDecision, n.Kind())
	_, ok = d.Node("AC09")
	assert.False(t, ok)
}

func TestDecode_Invalid(t *testing.T) {
	d, res, err := Decode(doc([]any{"x"}, []any{}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDocument))
	assert.Nil(t, d)
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
}

func TestNodeType(t *testing.T) {
	assert.Equal(t, "EV", TypeEvent.Prefix())
	assert.Equal(t, "AC", TypeActivity.Prefix())
	assert.Equal(t, "DE", TypeDecision.Prefix())
	assert.Equal(t, "", NodeType("gateway").Prefix())
}

func TestSchemaListsAreCopies(t *testing.T) {
	types := NodeTypes()
	types[0] = "mutated"
	assert.Equal(t, []string{"activity", "decision", "event"}, NodeTypes())
	assert.Equal(t, []string{"high", "low", "mid"}, ConfidenceLevels())
	assert.Equal(t, []string{"doc_clause", "inferred_boundary", "text", "transcript"}, ReferenceKinds())
	assert.Equal(t, []string{"condition", "from", "to"}, AllowedEdgeFields())
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("AC00"))
	assert.False(t, ValidID(" AC00"))
	assert.False(t, ValidID("AC000"))
	assert.False(t, ValidID("ev01"))
}
