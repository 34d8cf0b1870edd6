// Package frontmatter splits YAML front matter from text documents.
//
// Front matter is a block delimited by lines containing only "---" at the
// very start of a file. flowmind reads it from process descriptions to pick
// up the process name and language:
//
//	---
//	name: Invoice approval
//	language: de
//	---
//	Wenn eine Rechnung eingeht, prüft die Buchhaltung sie.
//
// Both LF and CRLF line endings are handled.
package frontmatter
