// Package decode turns JSON, YAML and TOML documents into dsl.Value trees.
//
// The validator only ever sees the normalized tree, so a process description
// written by hand in YAML or TOML is checked by exactly the same rules as the
// JSON produced by the extraction step.
package decode

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/pkg/fileutil"
)

// Format is an input serialization format.
type Format string

// Input formats.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats returns the accepted format names.
func Formats() []string {
	return []string{string(FormatAuto), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat converts a user-supplied name into a Format.
// The empty string is treated as FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "input format %q (valid: %s)",
			name, strings.Join(Formats(), ", "))
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Bytes decodes data in the given format. FormatAuto is treated as JSON.
// Decoding failures match errors.ErrDecode.
func Bytes(data []byte, format Format) (dsl.Value, error) {
	var (
		tree any
		err  error
	)

	switch format {
	case FormatAuto, FormatJSON:
		tree, err = decodeJSON(data)
	case FormatYAML:
		err = yaml.Unmarshal(data, &tree)
	case FormatTOML:
		var table map[string]any
		err = toml.Unmarshal(data, &table)
		tree = table
	default:
		return dsl.Null(), errors.Wrapf(errors.ErrUnsupportedFormat, "input format %q", format)
	}

	if err != nil {
		return dsl.Null(), errors.Wrapf(errors.Mark(err, errors.ErrDecode), "decoding %s", formatName(format))
	}
	return dsl.FromAny(tree), nil
}

// File reads and decodes the file at path. With FormatAuto the format is
// inferred from the extension. The format actually used is returned.
func File(path string, format Format) (dsl.Value, Format, error) {
	if format == "" || format == FormatAuto {
		format = FormatFromPath(path)
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return dsl.Null(), format, err
	}

	v, err := Bytes(data, format)
	if err != nil {
		return dsl.Null(), format, errors.Wrapf(err, "reading %s", path)
	}
	return v, format, nil
}

// decodeJSON decodes a single JSON value, keeping integers exact and
// rejecting trailing data.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return tree, nil
}

func formatName(f Format) string {
	if f == FormatAuto {
		return string(FormatJSON)
	}
	return string(f)
}
