package lang

import (
	"strconv"
	"strings"
)

// Kind indicates the type of a literal value.
type Kind int

const (
	// KindBool represents a boolean literal value.
	KindBool Kind = iota

	// KindString represents a string literal value.
	KindString

	// KindInt represents an integer literal value.
	KindInt

	// KindFloat represents a floating-point literal value.
	KindFloat

	// KindArray represents an ordered sequence of literal values.
	KindArray
)

// String returns a string representation of the literal kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"

	case KindString:
		return "String"

	case KindInt:
		return "Int"

	case KindFloat:
		return "Float"

	case KindArray:
		return "Array"

	default:
		return "Unknown"
	}
}

// Literal is a tagged value appearing as a directive argument.
// Exactly one of the payload fields is meaningful based on Kind.
type Literal struct {
	Kind  Kind
	Bool  bool
	Str   string
	Int   int64
	Float float64
	Array []Literal
}

// NewBool creates a boolean literal.
func NewBool(v bool) Literal {
	return Literal{Kind: KindBool, Bool: v}
}

// NewString creates a string literal with the given content.
// The content is stored without quote delimiters.
func NewString(s string) Literal {
	return Literal{Kind: KindString, Str: s}
}

// NewInt creates an integer literal.
func NewInt(v int64) Literal {
	return Literal{Kind: KindInt, Int: v}
}

// NewFloat creates a floating-point literal.
func NewFloat(v float64) Literal {
	return Literal{Kind: KindFloat, Float: v}
}

// NewArray creates an array literal from the given elements.
func NewArray(elems ...Literal) Literal {
	return Literal{Kind: KindArray, Array: elems}
}

// ToNative converts the literal to its native Go representation:
// bool, string, int64, float64, or []any.
func (l Literal) ToNative() any {
	switch l.Kind {
	case KindBool:
		return l.Bool

	case KindString:
		return l.Str

	case KindInt:
		return l.Int

	case KindFloat:
		return l.Float

	case KindArray:
		elems := make([]any, len(l.Array))
		for i, e := range l.Array {
			elems[i] = e.ToNative()
		}

		return elems

	default:
		return nil
	}
}

// String renders the literal in source form.
//
// Strings are quoted with the first delimiter (double quote, single quote,
// backtick) not occurring in the content. The grammar has no escape
// sequences, so a string containing all three delimiters has no exact
// source form; the double-quoted rendering is returned as a best effort.
func (l Literal) String() string {
	switch l.Kind {
	case KindBool:
		return strconv.FormatBool(l.Bool)

	case KindString:
		return quoteString(l.Str)

	case KindInt:
		return strconv.FormatInt(l.Int, 10)

	case KindFloat:
		return formatFloat(l.Float)

	case KindArray:
		parts := make([]string, len(l.Array))
		for i, e := range l.Array {
			parts[i] = e.String()
		}

		return "[" + strings.Join(parts, ", ") + "]"

	default:
		return ""
	}
}

// quoteString wraps s in the first quote delimiter not present in s.
func quoteString(s string) string {
	for _, q := range []string{`"`, `'`, "`"} {
		if !strings.Contains(s, q) {
			return q + s + q
		}
	}

	return `"` + s + `"`
}

// formatFloat renders a float with a mandatory fractional part so the
// result remains a valid float literal.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
