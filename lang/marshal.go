package lang

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler for Document.
func (doc *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(doc.ToSlice())
}

// ToSlice converts the document to a native Go structure: one map per
// node in document order.
//
// Text nodes become {"kind": "text", "text": ..., "span": [start, end]}.
// Call nodes become {"kind": "call", "name": ..., "args": [...], "span":
// [start, end]} where each argument is {"name": ..., "value": ...} with
// the literal converted via [Literal.ToNative]. Duplicate argument names
// are preserved in source order.
func (doc *Document) ToSlice() []any {
	nodes := make([]any, len(doc.Nodes))

	for i, node := range doc.Nodes {
		switch n := node.(type) {
		case *Text:
			nodes[i] = map[string]any{
				"kind": "text",
				"text": n.Content,
				"span": []int{n.Span.Start, n.Span.End},
			}

		case *Call:
			args := make([]any, len(n.Args))
			for j, arg := range n.Args {
				args[j] = map[string]any{
					"name":  arg.Name,
					"value": arg.Value.ToNative(),
				}
			}

			nodes[i] = map[string]any{
				"kind": "call",
				"name": n.Name,
				"args": args,
				"span": []int{n.Span.Start, n.Span.End},
			}
		}
	}

	return nodes
}

// FormatJSON writes the document's node tree to w as indented JSON.
func (doc *Document) FormatJSON(w io.Writer, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", spaces(indent))

	return enc.Encode(doc.ToSlice())
}

// FormatYAML writes the document's node tree to w as YAML.
func (doc *Document) FormatYAML(w io.Writer, indent int) error {
	enc := yaml.NewEncoder(w, yaml.Indent(indent))
	defer enc.Close()

	return enc.Encode(doc.ToSlice())
}

// Print writes a compact node-per-line rendering of the document to w,
// intended for debugging the scanner.
func (doc *Document) Print(w io.Writer) {
	for i, node := range doc.Nodes {
		switch n := node.(type) {
		case *Text:
			fmt.Fprintf(w, "%4d [%d:%d] Text %q\n",
				i, n.Span.Start, n.Span.End, n.Content)

		case *Call:
			fmt.Fprintf(w, "%4d [%d:%d] Call %s\n",
				i, n.Span.Start, n.Span.End, n.Name)

			for _, arg := range n.Args {
				fmt.Fprintf(w, "       %s = %s (%s)\n",
					arg.Name, arg.Value, arg.Value.Kind)
			}
		}
	}
}

// spaces returns an indent string of n spaces, defaulting to two.
func spaces(n int) string {
	if n <= 0 {
		n = 2
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}

	return string(buf)
}
