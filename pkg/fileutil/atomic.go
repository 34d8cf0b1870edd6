// Package fileutil provides bounded reads and atomic writes for FlowMind
// inputs and reports.
package fileutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

// DefaultFilePerm is the permission used for reports and drafts.
const DefaultFilePerm = 0o644

// Encoding is a serialization format for structured output files.
type Encoding string

const (
	// EncodingJSON writes indented JSON.
	EncodingJSON Encoding = "json"
	// EncodingYAML writes YAML.
	EncodingYAML Encoding = "yaml"
)

// EncodingForPath picks the encoding from the file extension.
// Files ending in .yaml or .yml are YAML; everything else is JSON.
func EncodingForPath(path string) Encoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML
	default:
		return EncodingJSON
	}
}

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// This ensures interrupted writes leave the original file intact.
//
// Missing parent directories are created. Permissions are applied to the final
// file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "creating parent directory")
	}

	// Create temp file in same directory for atomic rename (same filesystem required)
	tmp, err := os.CreateTemp(dir, ".flowmind-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		// Only remove if rename failed (file still exists)
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// Marshal encodes v with the given encoding. The output always ends in a
// newline. JSON output is indented with two spaces and does not escape HTML
// characters, so evidence snippets stay readable.
func Marshal(v any, enc Encoding) (data []byte, err error) {
	switch enc {
	case EncodingYAML:
		// yaml.Marshal panics on unmarshalable types; recover and return error
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf("marshaling YAML: %v", r)
			}
		}()
		data, err = yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
	case EncodingJSON:
		var buf bytes.Buffer
		e := json.NewEncoder(&buf)
		e.SetEscapeHTML(false)
		e.SetIndent("", "  ")
		if err := e.Encode(v); err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
		data = buf.Bytes()
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "encoding %q", enc)
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// AtomicWriteEncoded encodes v using the encoding implied by the path's
// extension and writes it atomically with DefaultFilePerm.
func AtomicWriteEncoded(path string, v any) error {
	data, err := Marshal(v, EncodingForPath(path))
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, DefaultFilePerm)
}
