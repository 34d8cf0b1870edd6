package draft

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guncekal/text-to-processflow/internal/dsl"
)

func TestNew_Defaults(t *testing.T) {
	d := New("  When an invoice arrives, accounting checks it.\n", Options{})

	assert.Equal(t, DefaultName, d.Process.Name)
	assert.Equal(t, SourceFreeText, d.Process.SourceType)
	assert.Equal(t, DefaultLanguage, d.Process.Language)
	assert.Equal(t, dsl.SchemaVersion, d.Process.DSLVersion)
	assert.Equal(t, "When an invoice arrives, accounting checks it.", d.InputPreview)
	assert.Equal(t, Message, d.Message)
}

func TestNew_Options(t *testing.T) {
	d := New("Rechnungseingang prüfen und freigeben", Options{
		Name:          "Rechnungsprüfung",
		Language:      "de",
		PreviewLength: 17,
	})

	assert.Equal(t, "Rechnungsprüfung", d.Process.Name)
	assert.Equal(t, "de", d.Process.Language)
	assert.Equal(t, "Rechnungseingang ", d.InputPreview)
}

func TestNew_BlankInput(t *testing.T) {
	d := New(" \n\t", Options{})

	assert.Equal(t, "", d.InputPreview)
	assert.Equal(t, DefaultName, d.Process.Name)
	assert.Equal(t, Message, d.Message)
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", Preview("abc", 10))
	assert.Equal(t, "ab", Preview("abc", 2))
	assert.Equal(t, "äö", Preview("äöü", 2))
	assert.Equal(t, "abc", Preview("abc", 0))

	long := strings.Repeat("x", 500)
	assert.Len(t, Preview(long, DefaultPreviewLength), DefaultPreviewLength)
}

func TestDraft_IsValidDocument(t *testing.T) {
	d := New("Customer submits an order.", Options{})

	data, err := json.Marshal(d)
	require.NoError(t, err)
	var tree any
	require.NoError(t, json.Unmarshal(data, &tree))
	res := dsl.ValidateAny(tree)
	assert.True(t, res.Valid, "errors: %v", res.Errors)

	assert.Contains(t, string(data), `"nodes":[]`)
	assert.Contains(t, string(data), `"source_type":"free_text"`)
}

func TestParse(t *testing.T) {
	h, text, err := Parse([]byte("---\nname: Invoice approval\nlanguage: de\n---\nDie Buchhaltung prüft.\n"))
	require.NoError(t, err)
	assert.Equal(t, Header{Name: "Invoice approval", Language: "de"}, h)
	assert.Equal(t, "Die Buchhaltung prüft.\n", text)

	h, text, err = Parse([]byte("No header here."))
	require.NoError(t, err)
	assert.Equal(t, Header{}, h)
	assert.Equal(t, "No header here.", text)

	_, _, err = Parse([]byte("---\nname: x\n"))
	assert.Error(t, err)
}
