// Package report wraps validation results in a report envelope and renders
// them for people (colored text) or machines (JSON, YAML).
//
// # Basic Usage
//
//	rep := report.New("flow.json", dsl.Validate(tree))
//	reporter := report.NewReporter(os.Stdout, report.FormatText)
//	if err := reporter.Report(rep); err != nil {
//		return err
//	}
package report

import (
	"github.com/google/uuid"

	"github.com/guncekal/text-to-processflow/internal/dsl"
)

// Report is the envelope written for every validation run.
type Report struct {
	// RunID distinguishes runs in logs and saved reports.
	RunID      string       `json:"run_id" yaml:"run_id"`
	Source     string       `json:"source" yaml:"source"`
	DSLVersion string       `json:"dsl_version" yaml:"dsl_version"`
	Valid      bool         `json:"valid" yaml:"valid"`
	ErrorCount int          `json:"error_count" yaml:"error_count"`
	Errors     []dsl.Record `json:"errors" yaml:"errors"`
}

// New builds a report for res read from source.
func New(source string, res dsl.Result) *Report {
	errs := res.Errors
	if errs == nil {
		errs = []dsl.Record{}
	}
	return &Report{
		RunID:      NewRunID(),
		Source:     source,
		DSLVersion: dsl.SchemaVersion,
		Valid:      res.Valid,
		ErrorCount: len(errs),
		Errors:     errs,
	}
}

// NewRunID returns a short random identifier.
func NewRunID() string {
	return uuid.New().String()[:8]
}

// Result returns the validation result carried by the report.
func (r *Report) Result() dsl.Result {
	return dsl.Result{Valid: r.Valid, Errors: r.Errors}
}

// CodeCounts returns how many records carry each error code.
func (r *Report) CodeCounts() map[dsl.Code]int {
	counts := make(map[dsl.Code]int)
	for _, rec := range r.Errors {
		counts[rec.Code]++
	}
	return counts
}
