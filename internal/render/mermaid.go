// Package render turns a valid process document into a Mermaid flowchart.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/guncekal/text-to-processflow/internal/dsl"
	"github.com/guncekal/text-to-processflow/internal/errors"
)

// Direction is a Mermaid flowchart orientation.
type Direction string

// Supported directions.
const (
	TopDown   Direction = "TD"
	LeftRight Direction = "LR"
	BottomUp  Direction = "BT"
	RightLeft Direction = "RL"
)

// ParseDirection validates a direction name. The empty string means TopDown.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case "":
		return TopDown, nil
	case TopDown, LeftRight, BottomUp, RightLeft:
		return d, nil
	case "TB":
		return TopDown, nil
	default:
		return "", errors.Newf("invalid flowchart direction %q (valid: TD, LR, BT, RL)", s)
	}
}

// Options controls Mermaid output.
type Options struct {
	Direction Direction
}

// Mermaid writes doc as a Mermaid flowchart.
//
// Events are drawn as stadiums, activities as rectangles and decisions as
// rhombi. Edges carrying a condition are labelled with it. Nodes and edges
// keep their document order. An edge endpoint that names no node in doc is
// drawn as a placeholder node labelled with the endpoint text.
func Mermaid(w io.Writer, doc *dsl.Document, opts Options) error {
	if doc == nil {
		return errors.New("nil document")
	}
	dir := opts.Direction
	if dir == "" {
		dir = TopDown
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "flowchart %s\n", dir)
	for _, n := range doc.Nodes {
		left, right := shape(n.Kind())
		fmt.Fprintf(&sb, "    %s%s%s%s\n", n.ID, left, quote(n.Label), right)
	}

	ids := endpointIDs(doc)
	for _, p := range ids.placeholders {
		fmt.Fprintf(&sb, "    %s[%s]\n", ids.byEndpoint[p], quote(p))
	}
	for _, e := range doc.Edges {
		from, to := ids.byEndpoint[e.From], ids.byEndpoint[e.To]
		if e.Condition != "" {
			fmt.Fprintf(&sb, "    %s -->|%s| %s\n", from, quote(e.Condition), to)
			continue
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", from, to)
	}

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing flowchart")
}

// endpoints maps edge endpoints to the Mermaid ids they are drawn with.
type endpoints struct {
	byEndpoint map[string]string
	// placeholders lists endpoints naming no node, in first-seen order.
	placeholders []string
}

func endpointIDs(doc *dsl.Document) endpoints {
	ids := endpoints{byEndpoint: make(map[string]string)}
	resolve := func(endpoint string) {
		if _, seen := ids.byEndpoint[endpoint]; seen {
			return
		}
		if n, ok := doc.Node(endpoint); ok {
			ids.byEndpoint[endpoint] = n.ID
			return
		}
		ids.placeholders = append(ids.placeholders, endpoint)
		ids.byEndpoint[endpoint] = fmt.Sprintf("ext%d", len(ids.placeholders))
	}
	for _, e := range doc.Edges {
		resolve(e.From)
		resolve(e.To)
	}
	return ids
}

// MermaidString is Mermaid rendered to a string.
func MermaidString(doc *dsl.Document, opts Options) (string, error) {
	var sb strings.Builder
	if err := Mermaid(&sb, doc, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func shape(t dsl.NodeType) (string, string) {
	switch t {
	case dsl.TypeEvent:
		return "([", "])"
	case dsl.TypeDecision:
		return "{", "}"
	default:
		return "[", "]"
	}
}

// quote wraps s in double quotes, replacing characters Mermaid cannot take
// inside a quoted label.
func quote(s string) string {
	r := strings.NewReplacer(
		`"`, "#quot;",
		"\r\n", " ",
		"\n", " ",
		"|", "#124;",
	)
	return `"` + r.Replace(strings.TrimSpace(s)) + `"`
}
