package config

import (
	"fmt"
	"strings"

	"github.com/guncekal/text-to-processflow/internal/decode"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/render"
	"github.com/guncekal/text-to-processflow/internal/report"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not supported.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidValue indicates a field holds a value outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	add := func(field string, value any, err error) {
		errs = append(errs, &FieldError{Field: field, Value: value, Err: err})
	}

	if cfg.Version != DefaultVersion {
		add("version", cfg.Version, ErrUnsupportedVersion)
	}

	if err := validatePath(cfg.Output); err != nil {
		add("output", cfg.Output, err)
	}

	if _, err := report.ParseFormat(cfg.ReportFormat); err != nil {
		add("report_format", cfg.ReportFormat, ErrInvalidValue)
	}

	if _, err := decode.ParseFormat(cfg.InputFormat); err != nil {
		add("input_format", cfg.InputFormat, ErrInvalidValue)
	}

	if _, err := render.ParseDirection(cfg.Render.Direction); err != nil {
		add("render.direction", cfg.Render.Direction, ErrInvalidValue)
	}

	if cfg.Draft.PreviewLength < 0 {
		add("draft.preview_length", cfg.Draft.PreviewLength, ErrInvalidValue)
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents an error for a specific configuration field.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Err.Error(), e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
