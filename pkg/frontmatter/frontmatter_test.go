package frontmatter

import (
	"testing"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

type processMeta struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta processMeta
		wantBody string
		wantErr  error
	}{
		{
			name:     "header and body",
			input:    "---\nname: Invoice approval\nlanguage: de\n---\nAccounting checks invoices.\n",
			wantMeta: processMeta{Name: "Invoice approval", Language: "de"},
			wantBody: "Accounting checks invoices.\n",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: Onboarding\r\n---\r\nHR sends the contract.",
			wantMeta: processMeta{Name: "Onboarding"},
			wantBody: "HR sends the contract.",
		},
		{
			name:     "no front matter",
			input:    "Customer submits an order.\n---\nname: ignored\n",
			wantBody: "Customer submits an order.\n---\nname: ignored\n",
		},
		{
			name:     "empty header",
			input:    "---\n---\nbody",
			wantBody: "body",
		},
		{
			name:     "header only",
			input:    "---\nlanguage: fr\n---",
			wantMeta: processMeta{Language: "fr"},
			wantBody: "",
		},
		{
			name:    "unterminated",
			input:   "---\nname: x\nbody without end",
			wantErr: ErrUnterminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta processMeta
			body, err := Parse([]byte(tt.input), &meta)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	var meta processMeta
	_, err := Parse([]byte("---\nname: [unclosed\n---\nbody\n"), &meta)
	if err == nil {
		t.Fatal("Parse() expected error for invalid YAML")
	}
}

func TestSplit_NotFound(t *testing.T) {
	header, body, found, err := Split([]byte("plain"))
	if err != nil || found || header != nil || string(body) != "plain" {
		t.Errorf("Split() = %q, %q, %v, %v", header, body, found, err)
	}
}
