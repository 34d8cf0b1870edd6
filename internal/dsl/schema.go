package dsl

import (
	"regexp"
	"slices"
)

// SchemaVersion is the only Process DSL version this package understands.
const SchemaVersion = "1.0"

// IDPattern is the regular expression every node id must match.
const IDPattern = `^(EV|AC|DE)\d{2}$`

var idRegex = regexp.MustCompile(IDPattern)

// NodeType is the kind of a process node.
type NodeType string

// Node types.
const (
	TypeEvent    NodeType = "event"
	TypeActivity NodeType = "activity"
	TypeDecision NodeType = "decision"
)

// Prefix returns the id prefix for the node type, or "" if the type is unknown.
func (t NodeType) Prefix() string {
	return typePrefixes[t]
}

// typePrefixes maps node types to the id prefix they require.
var typePrefixes = map[NodeType]string{
	TypeEvent:    "EV",
	TypeActivity: "AC",
	TypeDecision: "DE",
}

// Confidence is how sure the extractor was about a node.
type Confidence string

// Confidence levels.
const (
	ConfidenceLow  Confidence = "low"
	ConfidenceMid  Confidence = "mid"
	ConfidenceHigh Confidence = "high"
)

// ReferenceKind names the kind of evidence backing a node.
type ReferenceKind string

// Reference kinds.
const (
	ReferenceText             ReferenceKind = "text"
	ReferenceDocClause        ReferenceKind = "doc_clause"
	ReferenceTranscript       ReferenceKind = "transcript"
	ReferenceInferredBoundary ReferenceKind = "inferred_boundary"
)

// Field name sets. All lists are kept sorted so they can be reported as-is.
var (
	nodeTypes        = []string{"activity", "decision", "event"}
	confidenceLevels = []string{"high", "low", "mid"}
	referenceKinds   = []string{"doc_clause", "inferred_boundary", "text", "transcript"}

	requiredNodeFields = []string{"confidence", "id", "label", "reference", "responsible", "type"}
	allowedEdgeFields  = []string{"condition", "from", "to"}
	requiredEdgeFields = []string{"from", "to"}
)

// NodeTypes returns the allowed node types in sorted order.
func NodeTypes() []string { return slices.Clone(nodeTypes) }

// ConfidenceLevels returns the allowed confidence levels in sorted order.
func ConfidenceLevels() []string { return slices.Clone(confidenceLevels) }

// ReferenceKinds returns the allowed reference kinds in sorted order.
func ReferenceKinds() []string { return slices.Clone(referenceKinds) }

// RequiredNodeFields returns the keys every node must carry, sorted.
func RequiredNodeFields() []string { return slices.Clone(requiredNodeFields) }

// AllowedEdgeFields returns the only keys an edge may carry, sorted.
func AllowedEdgeFields() []string { return slices.Clone(allowedEdgeFields) }

// ValidID reports whether id is a syntactically valid node id.
// The id is matched as given; callers trim it first when appropriate.
func ValidID(id string) bool {
	return idRegex.MatchString(id)
}

func oneOf(set []string, v Value) bool {
	s, ok := v.AsString()
	if !ok {
		return false
	}
	_, found := slices.BinarySearch(set, s)
	return found
}
