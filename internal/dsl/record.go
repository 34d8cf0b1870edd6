package dsl

import (
	"fmt"
	"strings"
)

// Entity identifies what part of a document a Record refers to.
type Entity string

// Entities.
const (
	EntityPayload Entity = "payload"
	EntityNode    Entity = "node"
	EntityEdge    Entity = "edge"
)

// Code classifies a validation failure.
type Code string

// Error codes.
const (
	// CodeInvalidType means a scalar or container has the wrong shape.
	CodeInvalidType Code = "invalid_type"
	// CodeInvalidValue means the shape is right but the value is outside the
	// allowed enum or pattern.
	CodeInvalidValue Code = "invalid_value"
	// CodeInvalidStructure means a composite that should be an object is not.
	CodeInvalidStructure Code = "invalid_structure"
	// CodeMissingRequiredField means one or more required keys are absent.
	CodeMissingRequiredField Code = "missing_required_field"
	// CodeUnknownField means a disallowed key is present.
	CodeUnknownField Code = "unknown_field"
)

// WholeRecord is the field path used for errors about an entire record.
const WholeRecord = "*"

// Record is a single validation violation.
type Record struct {
	Entity Entity `json:"entity" yaml:"entity"`
	// EntityID is the node id, set only when the id is syntactically valid.
	EntityID *string `json:"entity_id" yaml:"entity_id"`
	// Field is a dotted path, WholeRecord, or an indexed path such as
	// "reference.value[2]".
	Field   string `json:"field" yaml:"field"`
	Code    Code   `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	// Expected and Received are omitted when nil.
	Expected any `json:"expected,omitempty" yaml:"expected,omitempty"`
	Received any `json:"received,omitempty" yaml:"received,omitempty"`
}

// ID returns the entity id or "" when none is set.
func (r Record) ID() string {
	if r.EntityID == nil {
		return ""
	}
	return *r.EntityID
}

// Error implements the error interface.
func (r Record) Error() string {
	var sb strings.Builder
	sb.WriteString(string(r.Entity))
	if id := r.ID(); id != "" {
		sb.WriteString(" ")
		sb.WriteString(id)
	}
	sb.WriteString(": ")
	if r.Field != "" && r.Field != WholeRecord {
		sb.WriteString("field \"")
		sb.WriteString(r.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(r.Message)
	fmt.Fprintf(&sb, " [%s]", r.Code)
	return sb.String()
}

// Result is the outcome of validating one document.
type Result struct {
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []Record `json:"errors" yaml:"errors"`
}

// ForEntity returns the records that refer to the given entity kind.
func (r Result) ForEntity(e Entity) []Record {
	var out []Record
	for _, rec := range r.Errors {
		if rec.Entity == e {
			out = append(out, rec)
		}
	}
	return out
}
