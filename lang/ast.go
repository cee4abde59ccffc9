package lang

import (
	"iter"
	"strings"

	"github.com/ardnew/shortcode/log"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of source bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Node is a unit of parsed document structure: either a run of literal
// text or a directive call. The spans of all nodes in a Document exactly
// tile the source input.
type Node interface {
	// Source returns the exact source text underlying the node.
	Source() string

	// Range returns the node's byte range in the source.
	Range() Span

	node()
}

// Text is a non-empty run of literal document characters.
type Text struct {
	Content string
	Span    Span
}

func (*Text) node() {}

// Source returns the text content verbatim.
func (t *Text) Source() string { return t.Content }

// Range returns the node's byte range in the source.
func (t *Text) Range() Span { return t.Span }

// Call is a parsed directive call: a name plus an ordered argument list.
type Call struct {
	Name string
	Args []Argument

	// Raw is the exact source text of the call, delimiters included.
	Raw  string
	Span Span
}

func (*Call) node() {}

// Source returns the exact source text of the call.
func (c *Call) Source() string { return c.Raw }

// Range returns the node's byte range in the source.
func (c *Call) Range() Span { return c.Span }

// Arg returns the value bound to the named argument.
// Duplicate argument names are syntactically permitted; the last
// occurrence in source order wins. Returns (zero, false) if absent.
func (c *Call) Arg(name string) (Literal, bool) {
	for i := len(c.Args) - 1; i >= 0; i-- {
		if c.Args[i].Name == name {
			return c.Args[i].Value, true
		}
	}

	return Literal{}, false
}

// Arguments returns an iterator over the call's arguments in source order.
// Duplicate names are yielded as written.
func (c *Call) Arguments() iter.Seq2[string, Literal] {
	return func(yield func(string, Literal) bool) {
		for _, arg := range c.Args {
			if !yield(arg.Name, arg.Value) {
				return
			}
		}
	}
}

// Argument is a name paired with a literal value.
type Argument struct {
	Name  string
	Value Literal
}

// Document is an ordered sequence of nodes produced by scanning a source
// text from start to end. It may be empty. A Document and its nodes are
// owned by the parse result and hold no reference to the source buffer.
type Document struct {
	Nodes []Node

	opts   options
	logger log.Logger
}

// All returns an iterator over all nodes in document order.
func (doc *Document) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range doc.Nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// Calls returns an iterator over the directive calls in document order.
func (doc *Document) Calls() iter.Seq[*Call] {
	return func(yield func(*Call) bool) {
		for _, n := range doc.Nodes {
			if call, ok := n.(*Call); ok {
				if !yield(call) {
					return
				}
			}
		}
	}
}

// Source reconstructs the original input by concatenating the source
// text of all nodes in order.
func (doc *Document) Source() string {
	var sb strings.Builder

	for _, n := range doc.Nodes {
		sb.WriteString(n.Source())
	}

	return sb.String()
}

// DefaultMaxDepth is the default maximum nesting depth for array literals.
// Exceeding the depth fails the array alternative, degrading the
// enclosing call to literal text.
var DefaultMaxDepth = 128

// options holds Document configuration.
type options struct {
	maxDepth int
	fallback Fallback
}

// Option configures parsing or rendering behavior.
type Option func(*Document)

// WithMaxDepth sets the maximum nesting depth for array literals.
func WithMaxDepth(depth int) Option {
	return func(doc *Document) {
		doc.opts.maxDepth = depth
	}
}

// WithFallback sets a substitution function consulted when a call fails
// to render. See [Fallback].
func WithFallback(fb Fallback) Option {
	return func(doc *Document) {
		doc.opts.fallback = fb
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(doc *Document) {
		doc.logger = logger
	}
}

// applyDefaults sets default option values on a Document.
func applyDefaults(doc *Document) {
	doc.opts.maxDepth = DefaultMaxDepth
}

// applyOptions applies functional options to a Document.
func applyOptions(doc *Document, opts ...Option) {
	for _, opt := range opts {
		opt(doc)
	}
}
