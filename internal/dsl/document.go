package dsl

import (
	"strings"

	"github.com/guncekal/text-to-processflow/internal/errors"
)

// ErrInvalidDocument is returned by Decode when the tree does not validate.
var ErrInvalidDocument = errors.New("invalid process document")

// Document is the typed form of a valid Process DSL tree.
type Document struct {
	Nodes []Node
	Edges []Edge
}

// Node is a process step.
type Node struct {
	ID          string
	Type        NodeType
	Label       string
	Responsible string
	Confidence  Confidence
	Reference   Reference
}

// Reference is the evidence backing a node.
type Reference struct {
	Kind  ReferenceKind
	Value []string
}

// Edge is a directed link between two node ids. Endpoints are trimmed but
// not required to name a node in the document.
type Edge struct {
	From      string
	To        string
	Condition string
}

// Kind returns the node type implied by the id prefix.
func (n Node) Kind() NodeType {
	for t, prefix := range typePrefixes {
		if strings.HasPrefix(n.ID, prefix) {
			return t
		}
	}
	return ""
}

// Node returns the node with the given id.
func (d *Document) Node(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Decode validates tree and converts it into a Document.
// If validation fails it returns the Result alongside an error wrapping
// ErrInvalidDocument.
func Decode(tree Value) (*Document, Result, error) {
	res := Validate(tree)
	if !res.Valid {
		return nil, res, errors.Wrapf(ErrInvalidDocument, "%d validation error(s)", len(res.Errors))
	}

	nodes, _ := tree.Field("nodes").AsArray()
	edges, _ := tree.Field("edges").AsArray()

	doc := &Document{
		Nodes: make([]Node, 0, len(nodes)),
		Edges: make([]Edge, 0, len(edges)),
	}
	for _, n := range nodes {
		ref := n.Field("reference")
		items, _ := ref.Field("value").AsArray()
		values := make([]string, len(items))
		for i, item := range items {
			values[i], _ = item.AsString()
		}
		id, _ := n.Field("id").AsString()
		doc.Nodes = append(doc.Nodes, Node{
			ID:          strings.TrimSpace(id),
			Type:        NodeType(str(n, "type")),
			Label:       str(n, "label"),
			Responsible: str(n, "responsible"),
			Confidence:  Confidence(str(n, "confidence")),
			Reference: Reference{
				Kind:  ReferenceKind(str(ref, "kind")),
				Value: values,
			},
		})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, Edge{
			From:      strings.TrimSpace(str(e, "from")),
			To:        strings.TrimSpace(str(e, "to")),
			Condition: str(e, "condition"),
		})
	}
	return doc, res, nil
}

func str(v Value, key string) string {
	s, _ := v.Field(key).AsString()
	return s
}
