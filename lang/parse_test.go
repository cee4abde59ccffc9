package lang

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseString_Structure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		nodes int
		calls int
	}{
		{
			name:  "empty input",
			input: "",
			nodes: 0,
			calls: 0,
		},
		{
			name:  "plain text",
			input: "nothing to expand here",
			nodes: 1,
			calls: 0,
		},
		{
			name:  "single call",
			input: `{{ upper(text="hi") }}`,
			nodes: 1,
			calls: 1,
		},
		{
			name:  "call between text",
			input: `Hello {{ name(x=1, y="a") }}!`,
			nodes: 3,
			calls: 1,
		},
		{
			name:  "adjacent calls",
			input: `{{ a() }}{{ b() }}`,
			nodes: 2,
			calls: 2,
		},
		{
			name:  "call with no arguments",
			input: `{{ toc() }}`,
			nodes: 1,
			calls: 1,
		},
		{
			name:  "whitespace inside delimiters",
			input: "{{\n\tfigure(\n\t\tsrc = \"a.png\" ,\n\t\twidth = 640\n\t)\n}}",
			nodes: 1,
			calls: 1,
		},
		{
			name:  "multiline string argument",
			input: "{{ note(body=\"line one\nline two\") }}",
			nodes: 1,
			calls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseString(context.Background(), tt.input)

			if len(doc.Nodes) != tt.nodes {
				t.Errorf("expected %d nodes, got %d", tt.nodes, len(doc.Nodes))
			}

			var calls int
			for range doc.Calls() {
				calls++
			}

			if calls != tt.calls {
				t.Errorf("expected %d calls, got %d", tt.calls, calls)
			}
		})
	}
}

func TestParseString_Arguments(t *testing.T) {
	doc := ParseString(context.Background(),
		`{{ mixed(flag=true, label='it''s', count=-3, ratio=0.25, tags=["a", "b",]) }}`)

	// The label argument terminates at the second single quote; the
	// following "s" breaks the call, so verify with a simpler input too.
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}

	if _, ok := doc.Nodes[0].(*Text); !ok {
		t.Fatalf("expected degraded text node, got %T", doc.Nodes[0])
	}

	doc = ParseString(context.Background(),
		`{{ mixed(flag=true, label="it's", count=-3, ratio=0.25, tags=["a", "b",]) }}`)

	call, ok := doc.Nodes[0].(*Call)
	if !ok {
		t.Fatalf("expected call node, got %T", doc.Nodes[0])
	}

	if call.Name != "mixed" {
		t.Errorf("expected name %q, got %q", "mixed", call.Name)
	}

	want := []Argument{
		{Name: "flag", Value: NewBool(true)},
		{Name: "label", Value: NewString("it's")},
		{Name: "count", Value: NewInt(-3)},
		{Name: "ratio", Value: NewFloat(0.25)},
		{Name: "tags", Value: NewArray(NewString("a"), NewString("b"))},
	}

	if diff := cmp.Diff(want, call.Args); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestParseString_QuoteDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double quotes",
			input: `{{ f(s="it's") }}`,
			want:  "it's",
		},
		{
			name:  "single quotes",
			input: `{{ f(s='say "hi"') }}`,
			want:  `say "hi"`,
		},
		{
			name:  "backticks",
			input: "{{ f(s=`\"both\" and 'both'`) }}",
			want:  `"both" and 'both'`,
		},
		{
			name:  "backslash is not an escape",
			input: `{{ f(s="a\nb") }}`,
			want:  `a\nb`,
		},
		{
			name:  "empty string",
			input: `{{ f(s="") }}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseString(context.Background(), tt.input)

			call, ok := doc.Nodes[0].(*Call)
			if !ok {
				t.Fatalf("expected call node, got %T", doc.Nodes[0])
			}

			value, found := call.Arg("s")
			if !found {
				t.Fatal("argument s not found")
			}

			if value.Kind != KindString || value.Str != tt.want {
				t.Errorf("expected %q, got %v %q", tt.want, value.Kind, value.Str)
			}
		})
	}
}

func TestParseString_NumericLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Literal
	}{
		{name: "zero", input: "0", want: NewInt(0)},
		{name: "negative zero", input: "-0", want: NewInt(0)},
		{name: "positive int", input: "42", want: NewInt(42)},
		{name: "negative int", input: "-17", want: NewInt(-17)},
		{name: "max int64", input: "9223372036854775807", want: NewInt(9223372036854775807)},
		{name: "simple float", input: "1.5", want: NewFloat(1.5)},
		{name: "negative float", input: "-0.5", want: NewFloat(-0.5)},
		{name: "fraction leading zeros", input: "1.007", want: NewFloat(1.007)},
		{name: "zero int part", input: "0.25", want: NewFloat(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseString(context.Background(), "{{ f(n="+tt.input+") }}")

			call, ok := doc.Nodes[0].(*Call)
			if !ok {
				t.Fatalf("expected call node, got %T", doc.Nodes[0])
			}

			value, found := call.Arg("n")
			if !found {
				t.Fatal("argument n not found")
			}

			if diff := cmp.Diff(tt.want, value); diff != "" {
				t.Errorf("literal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseString_NestedArrays(t *testing.T) {
	doc := ParseString(context.Background(), `{{ f(m=[[1, 2], [], [3.5, "x", [true]]]) }}`)

	call, ok := doc.Nodes[0].(*Call)
	if !ok {
		t.Fatalf("expected call node, got %T", doc.Nodes[0])
	}

	value, _ := call.Arg("m")

	want := NewArray(
		NewArray(NewInt(1), NewInt(2)),
		NewArray(),
		NewArray(NewFloat(3.5), NewString("x"), NewArray(NewBool(true))),
	)

	if diff := cmp.Diff(want, value); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestParseString_DuplicateArguments(t *testing.T) {
	doc := ParseString(context.Background(), `{{ f(x=1, x=2, y=3) }}`)

	call, ok := doc.Nodes[0].(*Call)
	if !ok {
		t.Fatalf("expected call node, got %T", doc.Nodes[0])
	}

	// All occurrences are preserved in source order.
	if len(call.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(call.Args))
	}

	// By-name access resolves to the last occurrence.
	value, found := call.Arg("x")
	if !found {
		t.Fatal("argument x not found")
	}

	if value.Int != 2 {
		t.Errorf("expected last occurrence 2, got %d", value.Int)
	}
}

func TestParseString_Spans(t *testing.T) {
	input := `pre {{ a(x=1) }} mid {{ b() }} post`
	doc := ParseString(context.Background(), input)

	if len(doc.Nodes) == 0 {
		t.Fatal("expected nodes")
	}

	// Spans must tile the input exactly.
	offset := 0

	for _, node := range doc.Nodes {
		span := node.Range()

		if span.Start != offset {
			t.Errorf("node starts at %d, expected %d", span.Start, offset)
		}

		if got := node.Source(); got != input[span.Start:span.End] {
			t.Errorf("source %q does not match span text %q",
				got, input[span.Start:span.End])
		}

		offset = span.End
	}

	if offset != len(input) {
		t.Errorf("spans end at %d, expected %d", offset, len(input))
	}
}

func TestDocument_Source(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`{{ a(x=1) }}`,
		`broken {{ a( and more`,
		"text {{ b(s=\"multi\nline\") }} tail",
		"{{ not(closed=1) }",
		"invalid \xff\xfe bytes {{ c() }}",
	}

	for _, input := range inputs {
		doc := ParseString(context.Background(), input)

		if got := doc.Source(); got != input {
			t.Errorf("Source() = %q, expected %q", got, input)
		}
	}
}

func TestParseString_TextCoalescing(t *testing.T) {
	// A failed candidate degrades byte by byte but must coalesce into a
	// single text node with its neighbors.
	input := "before {{ bad( after"
	doc := ParseString(context.Background(), input)

	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 coalesced text node, got %d", len(doc.Nodes))
	}

	text, ok := doc.Nodes[0].(*Text)
	if !ok {
		t.Fatalf("expected text node, got %T", doc.Nodes[0])
	}

	if text.Content != input {
		t.Errorf("expected %q, got %q", input, text.Content)
	}
}

func TestParseString_CallRaw(t *testing.T) {
	input := `{{  spaced ( x = 1 )  }}`
	doc := ParseString(context.Background(), input)

	call, ok := doc.Nodes[0].(*Call)
	if !ok {
		t.Fatalf("expected call node, got %T", doc.Nodes[0])
	}

	if call.Raw != input {
		t.Errorf("Raw = %q, expected %q", call.Raw, input)
	}
}

func TestParseString_Identifiers(t *testing.T) {
	valid := []string{"a", "_x", "snake_case", "CamelCase", "v2", "_"}

	for _, name := range valid {
		input := "{{ " + name + "() }}"

		doc := ParseString(context.Background(), input)

		call, ok := doc.Nodes[0].(*Call)
		if !ok {
			t.Fatalf("%s: expected call node, got %T", name, doc.Nodes[0])
		}

		if call.Name != name {
			t.Errorf("expected name %q, got %q", name, call.Name)
		}
	}

	invalid := []string{"1x", "-a", "a-b", "é"}

	for _, name := range invalid {
		input := "{{ " + name + "() }}"

		doc := ParseString(context.Background(), input)

		if _, ok := doc.Nodes[0].(*Call); ok {
			t.Errorf("%s: expected degraded text, got call", name)
		}
	}
}
