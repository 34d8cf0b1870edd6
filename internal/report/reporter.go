package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "report format %q (valid: text, json, yaml)", name)
	}
}

// maxValueWidth bounds how much of a received value is echoed in text output.
const maxValueWidth = 50

// entityOrder is the order in which groups are printed.
var entityOrder = []struct {
	entity dsl.Entity
	title  string
}{
	{dsl.EntityPayload, "Payload"},
	{dsl.EntityNode, "Nodes"},
	{dsl.EntityEdge, "Edges"},
}

// Reporter formats and writes validation reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation report to the output.
func (r *Reporter) Report(rep *Report) error {
	if rep == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(rep)
	case FormatYAML:
		return r.reportYAML(rep)
	default:
		return r.reportText(rep)
	}
}

// reportJSON writes the report as JSON.
func (r *Reporter) reportJSON(rep *Report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(rep), "encoding JSON report")
}

// reportYAML writes the report as YAML.
func (r *Reporter) reportYAML(rep *Report) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(rep); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(encoder.Close(), "closing YAML encoder")
}

// reportText writes the report as human-readable text.
func (r *Reporter) reportText(rep *Report) error {
	if rep.Valid {
		fmt.Fprintf(r.out, "%s%s\n", color.GreenString("✓ Validation passed"), r.sourceSuffix(rep))
		return nil
	}

	fmt.Fprintf(r.out, "%s%s\n\n",
		color.RedString("Validation failed: %d error(s)", rep.ErrorCount),
		r.sourceSuffix(rep))

	res := rep.Result()
	for _, g := range entityOrder {
		recs := res.ForEntity(g.entity)
		if len(recs) == 0 {
			continue
		}
		fmt.Fprintf(r.out, "%s:\n", g.title)
		for _, rec := range recs {
			r.printRecord(rec)
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprint(summarizeCodes(rep.CodeCounts())))
	return nil
}

func (r *Reporter) sourceSuffix(rep *Report) string {
	if rep.Source == "" {
		return ""
	}
	return " " + color.New(color.FgHiBlack).Sprintf("(%s)", rep.Source)
}

func (r *Reporter) printRecord(rec dsl.Record) {
	// Format:  • [id] field: message (code) [received]

	var sb strings.Builder
	sb.WriteString("  • ")

	if id := rec.ID(); id != "" {
		sb.WriteString(color.New(color.FgCyan).Sprintf("[%s] ", id))
	}

	if rec.Field != "" && rec.Field != dsl.WholeRecord {
		sb.WriteString(color.RedString(rec.Field))
		sb.WriteString(": ")
	}

	sb.WriteString(rec.Message)
	sb.WriteString(color.New(color.FgHiBlack).Sprintf(" (%s)", rec.Code))

	if rec.Received != nil {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", FormatValue(rec.Received)))
	}

	fmt.Fprintln(r.out, sb.String())
}

// FormatValue renders a received value on one line, truncated for display.
func FormatValue(v any) string {
	var s string
	switch t := v.(type) {
	case string:
		s = fmt.Sprintf("%q", t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			s = fmt.Sprintf("%v", t)
		} else {
			s = string(data)
		}
	}
	if len(s) > maxValueWidth {
		s = s[:maxValueWidth-3] + "..."
	}
	return s
}

func summarizeCodes(counts map[dsl.Code]int) string {
	parts := make([]string, 0, len(counts))
	for code, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", code, n))
	}
	// Sort for deterministic output
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
