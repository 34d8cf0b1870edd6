package dsl

import (
	"fmt"
	"slices"
	"strings"
)

// Expected-value descriptions shared by several checks.
const (
	expectNonEmptyString = "string (non-empty)"
	expectList           = "list"
	expectObject         = "dict"
)

// Validate checks a Process DSL document and returns every violation found.
//
// The document is expected to be an object with "nodes" and "edges" arrays.
// Malformed input never causes a panic; it is reported as records instead.
// Nodes are checked in input order, then edges. Within a node the checks run
// in the order id, type, id prefix, label, responsible, confidence, reference.
func Validate(doc Value) Result {
	v := &validator{errs: []Record{}}

	nodes := v.topLevelList(doc, "nodes")
	edges := v.topLevelList(doc, "edges")

	for _, n := range nodes {
		v.node(n)
	}
	for _, e := range edges {
		v.edge(e)
	}

	return Result{
		Valid:  len(v.errs) == 0,
		Errors: v.errs,
	}
}

// ValidateAny is Validate for a tree produced by a generic decoder.
func ValidateAny(doc any) Result {
	return Validate(FromAny(doc))
}

// validator accumulates records for a single Validate call.
type validator struct {
	errs []Record
}

func (v *validator) add(entity Entity, id *string, field string, code Code, msg string, expected, received any) {
	v.errs = append(v.errs, Record{
		Entity:   entity,
		EntityID: id,
		Field:    field,
		Code:     code,
		Message:  msg,
		Expected: expected,
		Received: received,
	})
}

// topLevelList returns the array stored under key, or an empty slice after
// recording an error when it is missing or not an array.
func (v *validator) topLevelList(doc Value, key string) []Value {
	field := doc.Field(key)
	items, ok := field.AsArray()
	if ok {
		return items
	}
	v.add(EntityPayload, nil, key, CodeInvalidType,
		fmt.Sprintf("Top-level field '%s' must be a list.", key),
		expectList, field.TypeName())
	return nil
}

// nodeID is the outcome of inspecting a node's id field.
type nodeID struct {
	raw     Value
	trimmed string
	isText  bool // non-empty string after trimming
	trusted *string
}

func inspectID(raw Value) nodeID {
	id := nodeID{raw: raw}
	s, ok := raw.AsString()
	if !ok {
		return id
	}
	id.trimmed = strings.TrimSpace(s)
	id.isText = id.trimmed != ""
	if id.isText && ValidID(id.trimmed) {
		trusted := id.trimmed
		id.trusted = &trusted
	}
	return id
}

func (v *validator) node(n Value) {
	if !n.IsObject() {
		v.add(EntityNode, nil, WholeRecord, CodeInvalidStructure,
			"Each item in 'nodes' must be an object/dict.",
			expectObject, n.TypeName())
		return
	}

	// The id is inspected first so every record for this node, including the
	// missing-fields one, carries the trusted id.
	id := inspectID(n.Field("id"))
	nodeErr := func(field string, code Code, msg string, expected, received any) {
		v.add(EntityNode, id.trusted, field, code, msg, expected, received)
	}

	keys := n.Keys()
	if missing := missingKeys(keys, requiredNodeFields); len(missing) > 0 {
		nodeErr(WholeRecord, CodeMissingRequiredField,
			fmt.Sprintf("Node is missing required fields: %s.", strings.Join(missing, ", ")),
			RequiredNodeFields(), keys)
	}

	// id
	switch {
	case !id.isText:
		nodeErr("id", CodeInvalidType, "Node id must be a non-empty string.",
			expectNonEmptyString, id.raw.Interface())
	case id.trusted == nil:
		nodeErr("id", CodeInvalidValue,
			fmt.Sprintf("Node id must match pattern %s (e.g., EV01, AC12, DE03).", IDPattern),
			IDPattern, id.trimmed)
	}

	// type
	typeVal := n.Field("type")
	if !oneOf(nodeTypes, typeVal) {
		nodeErr("type", CodeInvalidValue,
			fmt.Sprintf("Node type must be one of %s.", strings.Join(nodeTypes, ", ")),
			NodeTypes(), typeVal.Interface())
	}

	// id prefix must agree with type
	typeStr, _ := typeVal.AsString()
	if prefix := NodeType(typeStr).Prefix(); prefix != "" && id.trusted != nil {
		if !strings.HasPrefix(*id.trusted, prefix) {
			nodeErr("id", CodeInvalidValue,
				fmt.Sprintf("Node id prefix must match node type. For type '%s', id must start with '%s'.", typeStr, prefix),
				prefix+"00.."+prefix+"99", *id.trusted)
		}
	}

	// label, responsible
	if label := n.Field("label"); !nonEmptyString(label) {
		nodeErr("label", CodeInvalidType, "Node label must be a non-empty string.",
			expectNonEmptyString, label.Interface())
	}
	if responsible := n.Field("responsible"); !nonEmptyString(responsible) {
		nodeErr("responsible", CodeInvalidType,
			"Node responsible must be a non-empty string (position or team).",
			expectNonEmptyString, responsible.Interface())
	}

	// confidence
	if confidence := n.Field("confidence"); !oneOf(confidenceLevels, confidence) {
		nodeErr("confidence", CodeInvalidValue,
			fmt.Sprintf("Node confidence must be one of %s.", strings.Join(confidenceLevels, ", ")),
			ConfidenceLevels(), confidence.Interface())
	}

	// reference
	ref := n.Field("reference")
	if !ref.IsObject() {
		var received any
		if !ref.IsNull() {
			received = ref.TypeName()
		}
		nodeErr("reference", CodeInvalidStructure,
			"Node reference must be an object with 'kind' and 'value'.",
			"dict with keys: kind, value", received)
		return
	}

	if kind := ref.Field("kind"); !oneOf(referenceKinds, kind) {
		nodeErr("reference.kind", CodeInvalidValue,
			fmt.Sprintf("reference.kind must be one of %s.", strings.Join(referenceKinds, ", ")),
			ReferenceKinds(), kind.Interface())
	}

	value := ref.Field("value")
	items, ok := value.AsArray()
	if !ok || len(items) == 0 {
		nodeErr("reference.value", CodeInvalidType,
			"reference.value must be a non-empty list of strings.",
			"list[string] (non-empty)", value.Interface())
		return
	}
	for j, item := range items {
		if !nonEmptyString(item) {
			nodeErr(fmt.Sprintf("reference.value[%d]", j), CodeInvalidType,
				"Each item in reference.value must be a non-empty string.",
				expectNonEmptyString, item.Interface())
		}
	}
}

func (v *validator) edge(e Value) {
	if !e.IsObject() {
		v.add(EntityEdge, nil, WholeRecord, CodeInvalidStructure,
			"Each item in 'edges' must be an object/dict.",
			expectObject, e.TypeName())
		return
	}

	keys := e.Keys()
	if extra := unknownKeys(keys, allowedEdgeFields); len(extra) > 0 {
		v.add(EntityEdge, nil, WholeRecord, CodeUnknownField,
			fmt.Sprintf("Edge has unknown fields: %s.", strings.Join(extra, ", ")),
			AllowedEdgeFields(), extra)
	}

	if missingKeys(keys, requiredEdgeFields) != nil {
		v.add(EntityEdge, nil, WholeRecord, CodeMissingRequiredField,
			"Edge must include 'from' and 'to' fields.",
			slices.Clone(requiredEdgeFields), keys)
		return
	}

	for _, name := range requiredEdgeFields {
		if f := e.Field(name); !nonEmptyString(f) {
			v.add(EntityEdge, nil, name, CodeInvalidType,
				fmt.Sprintf("Edge '%s' must be a non-empty string.", name),
				expectNonEmptyString, f.Interface())
		}
	}

	if cond, ok := e.Get("condition"); ok && !nonEmptyString(cond) {
		v.add(EntityEdge, nil, "condition", CodeInvalidType,
			"Edge 'condition' must be a non-empty string when provided.",
			expectNonEmptyString, cond.Interface())
	}
}

func nonEmptyString(v Value) bool {
	s, ok := v.AsString()
	return ok && strings.TrimSpace(s) != ""
}

// missingKeys returns the entries of required absent from the sorted key list.
func missingKeys(keys, required []string) []string {
	var missing []string
	for _, k := range required {
		if _, ok := slices.BinarySearch(keys, k); !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// unknownKeys returns the entries of the sorted key list not in allowed.
func unknownKeys(keys, allowed []string) []string {
	var extra []string
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			extra = append(extra, k)
		}
	}
	return extra
}
