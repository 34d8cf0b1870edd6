package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/report"
)

// findRecord picks one record; replaced in tests.
var findRecord = func(records []dsl.Record) (int, error) {
	return fuzzyfinder.Find(
		records,
		func(i int) string { return recordLine(records[i]) },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return recordDetail(records[i])
		}),
	)
}

// browseRecords lets the user pick a validation record and prints its details.
func browseRecords(w io.Writer, records []dsl.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No validation errors.")
		return nil
	}

	idx, err := findRecord(records)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive browse failed")
	}

	fmt.Fprint(w, recordDetail(records[idx]))
	return nil
}

func recordLine(r dsl.Record) string {
	id := r.ID()
	if id == "" {
		id = "-"
	}
	return fmt.Sprintf("%s %s %s: %s", r.Entity, id, r.Field, r.Code)
}

func recordDetail(r dsl.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Entity:   %s\n", r.Entity)
	if id := r.ID(); id != "" {
		fmt.Fprintf(&sb, "ID:       %s\n", id)
	}
	fmt.Fprintf(&sb, "Field:    %s\n", r.Field)
	fmt.Fprintf(&sb, "Code:     %s\n", r.Code)
	fmt.Fprintf(&sb, "Message:  %s\n", r.Message)
	if r.Expected != nil {
		fmt.Fprintf(&sb, "Expected: %s\n", report.FormatValue(r.Expected))
	}
	if r.Received != nil {
		fmt.Fprintf(&sb, "Received: %s\n", report.FormatValue(r.Received))
	}
	return sb.String()
}
