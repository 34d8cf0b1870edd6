package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"text", []byte("flowchart TD\n"), 0o644},
		{"empty data", []byte{}, 0o644},
		{"private", []byte(`{"valid":true}`), 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading written file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != tt.perm {
				t.Errorf("perm = %o, want %o", info.Mode().Perm(), tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "2024", "output.json")

	if err := AtomicWriteFile(path, []byte("{}\n"), DefaultFilePerm); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestAtomicWriteFile_OverwriteLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.json")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWriteFile(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".flowmind-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestEncodingForPath(t *testing.T) {
	tests := []struct {
		path string
		want Encoding
	}{
		{"output.json", EncodingJSON},
		{"report.yaml", EncodingYAML},
		{"REPORT.YML", EncodingYAML},
		{"report", EncodingJSON},
		{"diagram.mmd", EncodingJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := EncodingForPath(tt.path); got != tt.want {
				t.Errorf("EncodingForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	v := map[string]any{"label": "Check <invoice> & approve", "valid": true}

	t.Run("json", func(t *testing.T) {
		data, err := Marshal(v, EncodingJSON)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if !strings.Contains(string(data), "<invoice> & approve") {
			t.Errorf("JSON output escaped HTML: %s", data)
		}
		if !strings.HasSuffix(string(data), "}\n") {
			t.Errorf("JSON output missing trailing newline: %q", data)
		}
		var decoded map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := Marshal(v, EncodingYAML)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var decoded map[string]any
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("output is not valid YAML: %v", err)
		}
		if decoded["valid"] != true {
			t.Errorf("decoded valid = %v, want true", decoded["valid"])
		}
	})

	t.Run("yaml panic is recovered", func(t *testing.T) {
		_, err := Marshal(map[string]any{"f": func() {}}, EncodingYAML)
		if err == nil {
			t.Error("expected error for unmarshalable value")
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Marshal(v, Encoding("xml"))
		if !errors.Is(err, errors.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})
}

func TestAtomicWriteEncoded(t *testing.T) {
	dir := t.TempDir()
	report := map[string]any{"valid": false, "error_count": 2}

	for _, name := range []string{"report.json", "report.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := AtomicWriteEncoded(path, report); err != nil {
				t.Fatalf("AtomicWriteEncoded() error = %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			var decoded map[string]any
			// YAML is a superset of JSON, so one decoder covers both files.
			if err := yaml.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("decoding %s: %v", name, err)
			}
			if decoded["error_count"] != 2 {
				t.Errorf("error_count = %v, want 2", decoded["error_count"])
			}
		})
	}
}
