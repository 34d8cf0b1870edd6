// Package draft builds the starting payload for a process description before
// any nodes have been extracted from it.
//
// A draft carries the process header and a preview of the source text along
// with empty node and edge lists, so it is always a valid Process DSL
// document and can be filled in by the extraction step or by hand.
package draft

import (
	"strings"
	"unicode/utf8"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/pkg/frontmatter"
)

// SourceFreeText marks a draft created from unstructured prose.
const SourceFreeText = "free_text"

// Defaults used when Options fields are zero.
const (
	DefaultName          = "FlowMind Draft"
	DefaultLanguage      = "en"
	DefaultPreviewLength = 200
)

// Message is the status note written into every draft.
const Message = "Pipeline skeleton is ready. Next: LLM extraction + validation."

// Options configures a draft.
type Options struct {
	Name          string
	Language      string
	PreviewLength int
}

// Header is the optional front matter of a process description.
type Header struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

// Parse splits a process description into its front matter and text.
// A description without front matter yields a zero Header.
func Parse(content []byte) (Header, string, error) {
	var h Header
	body, err := frontmatter.Parse(content, &h)
	if err != nil {
		return Header{}, "", errors.Wrap(err, "reading description header")
	}
	return h, string(body), nil
}

// Process is the draft header.
type Process struct {
	Name       string `json:"name" yaml:"name"`
	SourceType string `json:"source_type" yaml:"source_type"`
	Language   string `json:"language" yaml:"language"`
	DSLVersion string `json:"dsl_version" yaml:"dsl_version"`
}

// Draft is the payload written by `flowmind draft`.
type Draft struct {
	Process      Process `json:"process" yaml:"process"`
	InputPreview string  `json:"input_preview" yaml:"input_preview"`
	Nodes        []any   `json:"nodes" yaml:"nodes"`
	Edges        []any   `json:"edges" yaml:"edges"`
	Message      string  `json:"message" yaml:"message"`
}

// New builds a draft from the process text.
// Surrounding whitespace is trimmed before the preview is taken; blank text
// yields an empty preview.
func New(text string, opts Options) *Draft {
	text = strings.TrimSpace(text)

	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = DefaultPreviewLength
	}

	return &Draft{
		Process: Process{
			Name:       opts.Name,
			SourceType: SourceFreeText,
			Language:   opts.Language,
			DSLVersion: dsl.SchemaVersion,
		},
		InputPreview: Preview(text, opts.PreviewLength),
		Nodes:        []any{},
		Edges:        []any{},
		Message:      Message,
	}
}

// Preview returns at most n runes of s.
func Preview(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
