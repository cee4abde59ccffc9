package lang

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/shortcode/log"
)

// ParseString parses input text into a Document.
//
// Parsing is total: it succeeds for every input string. Candidate
// directives that fail to match in full degrade into literal text, never
// into an error. When called without options, the result is cached by
// source content for efficient repeated parsing.
func ParseString(ctx context.Context, input string, opts ...Option) *Document {
	if len(opts) == 0 {
		return parseStringCached(ctx, input)
	}

	return parseString(ctx, input, opts...)
}

// parseString parses input text, bypassing the document cache.
func parseString(ctx context.Context, input string, opts ...Option) *Document {
	doc := new(Document)

	applyDefaults(doc)
	applyOptions(doc, opts...)

	p := &parser{
		input:    input,
		maxDepth: doc.opts.maxDepth,
		logger:   doc.logger,
	}

	p.scan(doc)

	doc.logger.TraceContext(ctx, "parse complete",
		slog.Int("source_length", len(input)),
		slog.Int("node_count", len(doc.Nodes)))

	return doc
}

// parser holds the scanner state.
type parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
	logger   log.Logger
}

// scan decomposes the input into text and call nodes.
//
// At each position a complete call match is attempted first. If and only
// if it succeeds in full, a call node is emitted and the cursor advances
// past it. Otherwise exactly one character joins the current text run and
// the scan retries at the next position. Adjacent characters consumed
// this way coalesce into a single text node.
func (p *parser) scan(doc *Document) {
	var text strings.Builder

	textStart := 0

	flush := func(end int) {
		if text.Len() == 0 {
			return
		}

		doc.Nodes = append(doc.Nodes, &Text{
			Content: text.String(),
			Span:    Span{Start: textStart, End: end},
		})
		text.Reset()
	}

	for p.pos < len(p.input) {
		if strings.HasPrefix(p.input[p.pos:], "{{") {
			if call, ok := p.tryCall(); ok {
				flush(call.Span.Start)
				doc.Nodes = append(doc.Nodes, call)

				continue
			}
		}

		// Consume one character into the text run. Raw bytes are copied
		// so invalid UTF-8 survives reconstruction untouched.
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])

		if text.Len() == 0 {
			textStart = p.pos
		}

		text.WriteString(p.input[p.pos : p.pos+size])
		p.pos += size
	}

	flush(len(p.input))
}

// tryCall attempts to match a complete, well-formed call at the cursor:
// '{{' ws name ws '(' ws [arg (',' ws arg)*] ws ')' ws '}}'.
// The argument list permits no trailing comma. On any failure the cursor
// is restored and the candidate is left for the text run.
func (p *parser) tryCall() (*Call, bool) {
	start := p.pos
	p.pos += 2 // consume '{{'

	p.skipSpace()

	name, ok := p.ident()
	if !ok {
		p.pos = start

		return nil, false
	}

	p.skipSpace()

	if !p.expect('(') {
		p.pos = start

		return nil, false
	}

	p.skipSpace()

	var args []Argument

	if !p.peek(')') {
		for {
			arg, ok := p.argument()
			if !ok {
				p.pos = start

				return nil, false
			}

			args = append(args, arg)

			p.skipSpace()

			if p.expect(',') {
				p.skipSpace()

				continue
			}

			break
		}
	}

	if !p.expect(')') {
		p.pos = start

		return nil, false
	}

	p.skipSpace()

	if !strings.HasPrefix(p.input[p.pos:], "}}") {
		p.pos = start

		return nil, false
	}

	p.pos += 2

	return &Call{
		Name: name,
		Args: args,
		Raw:  p.input[start:p.pos],
		Span: Span{Start: start, End: p.pos},
	}, true
}

// argument matches: name ws '=' ws literal.
func (p *parser) argument() (Argument, bool) {
	name, ok := p.ident()
	if !ok {
		return Argument{}, false
	}

	p.skipSpace()

	if !p.expect('=') {
		return Argument{}, false
	}

	p.skipSpace()

	value, ok := p.literal()
	if !ok {
		return Argument{}, false
	}

	return Argument{Name: name, Value: value}, true
}

// literal attempts each alternative in order: boolean, string, float,
// int, array. The first alternative whose full lexical form matches at
// the cursor wins; a failed alternative restores the cursor before the
// next is tried.
func (p *parser) literal() (Literal, bool) {
	if lit, ok := p.boolean(); ok {
		return lit, true
	}

	if lit, ok := p.stringLit(); ok {
		return lit, true
	}

	if lit, ok := p.floatLit(); ok {
		return lit, true
	}

	if lit, ok := p.intLit(); ok {
		return lit, true
	}

	if lit, ok := p.arrayLit(); ok {
		return lit, true
	}

	return Literal{}, false
}

// boolean matches 'true' or 'false'.
func (p *parser) boolean() (Literal, bool) {
	switch {
	case strings.HasPrefix(p.input[p.pos:], "true"):
		p.pos += len("true")

		return NewBool(true), true

	case strings.HasPrefix(p.input[p.pos:], "false"):
		p.pos += len("false")

		return NewBool(false), true
	}

	return Literal{}, false
}

// stringLit matches raw text between a pair of matching quote delimiters
// (double quote, single quote, or backtick). No escape sequences are
// recognized; content may span multiple lines but cannot contain the
// delimiter itself. An unterminated string fails the alternative.
func (p *parser) stringLit() (Literal, bool) {
	if p.pos >= len(p.input) {
		return Literal{}, false
	}

	quote := p.input[p.pos]
	if quote != '"' && quote != '\'' && quote != '`' {
		return Literal{}, false
	}

	end := strings.IndexByte(p.input[p.pos+1:], quote)
	if end < 0 {
		return Literal{}, false
	}

	content := p.input[p.pos+1 : p.pos+1+end]
	p.pos += end + 2

	return NewString(content), true
}

// floatLit matches an optionally negative integer part followed by a
// mandatory '.' and one or more fractional digits. A digit sequence that
// cannot be represented as float64 fails the alternative.
func (p *parser) floatLit() (Literal, bool) {
	start := p.pos

	p.expect('-')

	if !p.intDigits() {
		p.pos = start

		return Literal{}, false
	}

	if !p.expect('.') {
		p.pos = start

		return Literal{}, false
	}

	if !p.fracDigits() {
		p.pos = start

		return Literal{}, false
	}

	text := p.input[start:p.pos]

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.logger.Trace("literal alternative failed",
			slog.Any("error", ErrNumericOverflow),
			slog.String("kind", "float"),
			slog.String("text", text))

		p.pos = start

		return Literal{}, false
	}

	return NewFloat(value), true
}

// intLit matches an optionally negative digit sequence with no leading
// zero unless the value is exactly 0. A sequence that cannot be
// represented as int64 fails the alternative.
func (p *parser) intLit() (Literal, bool) {
	start := p.pos

	p.expect('-')

	if !p.intDigits() {
		p.pos = start

		return Literal{}, false
	}

	text := p.input[start:p.pos]

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		p.logger.Trace("literal alternative failed",
			slog.Any("error", ErrNumericOverflow),
			slog.String("kind", "int"),
			slog.String("text", text))

		p.pos = start

		return Literal{}, false
	}

	return NewInt(value), true
}

// arrayLit matches a bracketed, comma-separated list of literals with an
// optional single trailing comma. Whitespace is insignificant around and
// between elements. Nesting beyond the configured depth fails the
// alternative.
func (p *parser) arrayLit() (Literal, bool) {
	start := p.pos

	if !p.expect('[') {
		return Literal{}, false
	}

	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		p.logger.Trace("literal alternative failed",
			slog.Any("error", ErrMaxDepthExceeded),
			slog.Int("max_depth", p.maxDepth))

		p.pos = start

		return Literal{}, false
	}

	var elems []Literal

	p.skipSpace()

	if p.expect(']') {
		return NewArray(), true
	}

	for {
		lit, ok := p.literal()
		if !ok {
			p.pos = start

			return Literal{}, false
		}

		elems = append(elems, lit)

		p.skipSpace()

		if p.expect(',') {
			p.skipSpace()

			if p.expect(']') {
				break // trailing comma
			}

			continue
		}

		if p.expect(']') {
			break
		}

		p.pos = start

		return Literal{}, false
	}

	return NewArray(elems...), true
}

// ident matches an identifier: an ASCII letter or underscore followed by
// letters, digits, or underscores.
func (p *parser) ident() (string, bool) {
	start := p.pos

	if p.pos >= len(p.input) || !isIdentStart(p.input[p.pos]) {
		return "", false
	}

	p.pos++

	for p.pos < len(p.input) && isIdentContinue(p.input[p.pos]) {
		p.pos++
	}

	return p.input[start:p.pos], true
}

// Helper methods

// intDigits consumes the digit run of an integer part, enforcing the
// leading-zero rule: a run longer than one digit cannot start with '0'.
func (p *parser) intDigits() bool {
	start := p.pos

	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}

	n := p.pos - start
	if n == 0 || (n > 1 && p.input[start] == '0') {
		p.pos = start

		return false
	}

	return true
}

// fracDigits consumes one or more fractional digits. Leading zeros are
// permitted in the fraction.
func (p *parser) fracDigits() bool {
	start := p.pos

	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}

	return p.pos > start
}

func (p *parser) peek(ch byte) bool {
	return p.pos < len(p.input) && p.input[p.pos] == ch
}

func (p *parser) expect(ch byte) bool {
	if p.peek(ch) {
		p.pos++

		return true
	}

	return false
}

// skipSpace skips runs of space, tab, carriage return, and line feed.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// Character classification

func isIdentStart(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
