package lang

import (
	"context"
	"log/slog"
	"strings"
)

// Handler expands a single directive call into rendered text.
//
// The handler receives the ordered argument list exactly as parsed; the
// engine performs no arity or type checking against a schema. The handler
// is solely responsible for validating presence and type of its expected
// arguments and reporting a descriptive failure if they are missing or
// mismatched.
type Handler interface {
	Expand(ctx context.Context, call *Call) (string, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, call *Call) (string, error)

// Expand implements Handler.
func (f HandlerFunc) Expand(ctx context.Context, call *Call) (string, error) {
	return f(ctx, call)
}

// Registry maps directive names to handlers. The registry is owned by the
// embedder; it must be immutable after construction or internally
// synchronized to permit concurrent renders.
type Registry interface {
	Lookup(name string) (Handler, bool)
}

// Fallback substitutes output for a call whose rendering failed. It
// receives the failed call and the error (ErrUnknownDirective or
// ErrDirectiveFailed). Returning a nil error splices the returned string
// into the output; returning a non-nil error aborts the render with it.
type Fallback func(call *Call, err error) (string, error)

// Render evaluates the document against the registry and returns the
// rendered output.
//
// Nodes are walked strictly in document order: text nodes are appended
// verbatim, and each call node is resolved through the registry and
// replaced by its handler's output. A name absent from the registry fails
// with ErrUnknownDirective; a handler failure is wrapped as
// ErrDirectiveFailed with its cause preserved. Either aborts the render
// unless a fallback is installed with [WithFallback].
//
// Rendering is deterministic: the same document and registry yield
// byte-identical output. Options are applied as overrides for this render
// only, so a shared Document may be rendered concurrently.
func (doc *Document) Render(
	ctx context.Context,
	reg Registry,
	opts ...Option,
) (string, error) {
	local := *doc
	applyOptions(&local, opts...)

	var out strings.Builder

	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case *Text:
			out.WriteString(n.Content)

		case *Call:
			expanded, err := local.expand(ctx, reg, n)
			if err != nil {
				return "", err
			}

			out.WriteString(expanded)
		}
	}

	local.logger.TraceContext(ctx, "render complete",
		slog.Int("node_count", len(doc.Nodes)),
		slog.Int("output_length", out.Len()))

	return out.String(), nil
}

// expand resolves and invokes the handler for a single call, applying the
// fallback policy on failure.
func (doc *Document) expand(
	ctx context.Context,
	reg Registry,
	call *Call,
) (string, error) {
	handler, found := reg.Lookup(call.Name)
	if !found {
		err := ErrUnknownDirective.
			With(slog.String("name", call.Name))

		return doc.recover(call, err)
	}

	expanded, err := handler.Expand(ctx, call)
	if err != nil {
		werr := ErrDirectiveFailed.Wrap(err).
			With(slog.String("name", call.Name))

		return doc.recover(call, werr)
	}

	return expanded, nil
}

// recover consults the fallback, if any, for a failed call.
func (doc *Document) recover(call *Call, err *Error) (string, error) {
	if doc.opts.fallback == nil {
		return "", err
	}

	doc.logger.Trace("fallback invoked",
		slog.String("name", call.Name),
		slog.Any("error", err))

	return doc.opts.fallback(call, err)
}
