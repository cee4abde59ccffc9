// Package lang implements the shortcode directive language embedded in
// free-form document text. Authors interleave prose with directive tokens
// of the form {{ name(arg=value, ...) }}; the engine scans the document
// into a sequence of text and call nodes, then expands each call through
// an externally supplied function registry.
//
// # Philosophy
//
// Parsing is total: every input string has exactly one valid decomposition
// into nodes, and no input is ever rejected. A malformed directive (such
// as an unmatched opener or a missing closer) is not an error; it degrades
// silently into literal text and reappears verbatim in the output. Content
// must never break a build because of directive syntax.
//
// Argument values are literals only. There are no expressions, variables,
// control flow, string escapes, or nested calls inside a directive.
//
// # Grammar
//
// Informal EBNF:
//
//	Document → (Call | Text)* EOF
//	Call     → '{{' ws Ident ws '(' ws [Arg (',' ws Arg)*] ws ')' ws '}}'
//	Arg      → Ident ws '=' ws Literal
//	Literal  → Boolean | String | Float | Int | Array
//	Boolean  → 'true' | 'false'
//	String   → '"' [^"]* '"' | "'" [^']* "'" | '`' [^`]* '`'
//	Int      → '-'? ('0' | [1-9][0-9]*)
//	Float    → Int '.' [0-9]+
//	Array    → '[' ws [Literal (ws ',' ws Literal)* (ws ',')?] ws ']'
//	Ident    → [A-Za-z_][A-Za-z0-9_]*
//	ws       → [ \t\r\n]*
//
// Literal alternatives are tried in the order written above; float is
// attempted before int because both share a sign/digit prefix and float
// requires the longer match. Arrays permit one trailing comma; argument
// lists permit none.
//
// # Example
//
//	doc := lang.ParseString(ctx, `Hello {{ upper(text="hi") }}!`)
//
//	out, err := doc.Render(ctx, reg) // reg maps "upper" to a Handler
//
// # Evaluation
//
// Rendering walks nodes in document order. Text nodes are appended
// verbatim. Call nodes are resolved through the registry: an absent name
// fails with [ErrUnknownDirective], and a handler failure is wrapped as
// [ErrDirectiveFailed]; both abort the render unless the embedder installs
// a fallback with [WithFallback]. The engine performs no arity or type
// checking and no escaping of handler output.
package lang
