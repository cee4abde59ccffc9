package lang

import (
	"context"
	"testing"
)

// FuzzParse verifies the scanner's totality invariants on arbitrary
// input: it never panics, never fails, and the resulting node spans
// reconstruct the input byte for byte.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"plain text",
		`{{ f() }}`,
		`{{ f(x=1, s="a", b=true) }}`,
		`{{ f(a=[1, 2.5, "x", [true],]) }}`,
		"{{ bad( ",
		"{{ f(x=1,) }}",
		"{{ f(n=01) }}",
		"{{ f(n=9223372036854775808) }}",
		`{{ f(s="unterminated) }}`,
		"{{ f(x={{ g() }}) }}",
		"{{}} {{ }} {{{",
		"text {{ f(s=`multi\nline`) }} tail",
		"\xff\xfe{{ f() }}\x80",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("parse panicked on input %q: %v", input, r)
			}
		}()

		// Bypass the cache so fuzzing doesn't accumulate entries.
		doc := ParseString(context.Background(), input, WithMaxDepth(DefaultMaxDepth))

		if got := doc.Source(); got != input {
			t.Errorf("reconstruction mismatch:\n got %q\nwant %q", got, input)
		}

		// Spans must tile the input without gaps or overlap.
		offset := 0

		for _, node := range doc.Nodes {
			span := node.Range()

			if span.Start != offset || span.End < span.Start {
				t.Fatalf("bad span [%d:%d] at offset %d",
					span.Start, span.End, offset)
			}

			offset = span.End
		}

		if offset != len(input) {
			t.Fatalf("spans cover %d of %d bytes", offset, len(input))
		}
	})
}
