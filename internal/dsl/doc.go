// Package dsl implements the FlowMind Process DSL: a graph of typed nodes
// (events, activities, decisions) joined by directed edges, where every node
// carries provenance metadata in a reference block.
//
// # Validation
//
// [Validate] checks a loosely-typed document tree in a single forward pass and
// reports every violation it finds instead of stopping at the first one:
//
//	tree, err := decode.Bytes(data, decode.FormatJSON)
//	if err != nil {
//		return err
//	}
//	res := dsl.Validate(tree)
//	if !res.Valid {
//		for _, rec := range res.Errors {
//			fmt.Println(rec.Error())
//		}
//	}
//
// Each [Record] names the entity (payload, node or edge), the field path and an
// error [Code]. A node id is echoed back as the record's entity id only when
// it is syntactically valid, so consumers never see a malformed id presented
// as an identifier.
//
// # Value Trees
//
// Input is represented as a [Value], a tagged union over the JSON data model.
// Accessors return an ok flag rather than failing, which keeps every check in
// the validator total. Use [FromAny] to wrap the output of any JSON, YAML or
// TOML decoder.
//
// # Typed Documents
//
// Once a tree is valid, [Decode] turns it into a [Document] with concrete
// [Node] and [Edge] values for downstream consumers such as renderers.
//
// Edge endpoints are not checked against node ids. Dangling references are
// accepted as-is.
package dsl
