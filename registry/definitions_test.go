package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/shortcode/lang"
)

func TestLoadDefinitions(t *testing.T) {
	defs := `
upper: 'upper(text)'
badge: '"[" + label + "]"'
repeat: 'join(map(1..count, word), " ")'
`

	reg, err := LoadDefinitions(strings.NewReader(defs))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	want := []string{"badge", "repeat", "upper"}
	names := reg.Names()

	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}

	tests := []struct {
		name string
		call *lang.Call
		want string
	}{
		{
			name: "builtin function",
			call: &lang.Call{
				Name: "upper",
				Args: []lang.Argument{
					{Name: "text", Value: lang.NewString("hi")},
				},
			},
			want: "HI",
		},
		{
			name: "string concatenation",
			call: &lang.Call{
				Name: "badge",
				Args: []lang.Argument{
					{Name: "label", Value: lang.NewString("beta")},
				},
			},
			want: "[beta]",
		},
		{
			name: "range and join",
			call: &lang.Call{
				Name: "repeat",
				Args: []lang.Argument{
					{Name: "count", Value: lang.NewInt(3)},
					{Name: "word", Value: lang.NewString("ho")},
				},
			},
			want: "ho ho ho",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, found := reg.Lookup(tt.call.Name)
			if !found {
				t.Fatalf("definition %q not registered", tt.call.Name)
			}

			out, err := handler.Expand(context.Background(), tt.call)
			if err != nil {
				t.Fatalf("expand error: %v", err)
			}

			if out != tt.want {
				t.Errorf("Expand() = %q, expected %q", out, tt.want)
			}
		})
	}
}

func TestLoadDefinitions_CompileError(t *testing.T) {
	_, err := LoadDefinitions(strings.NewReader(`bad: 'label +'`))
	if !errors.Is(err, ErrCompileDefinition) {
		t.Fatalf("expected ErrCompileDefinition, got %v", err)
	}
}

func TestLoadDefinitions_DecodeError(t *testing.T) {
	_, err := LoadDefinitions(strings.NewReader("\t{{{"))
	if !errors.Is(err, ErrDecodeDefinitions) {
		t.Fatalf("expected ErrDecodeDefinitions, got %v", err)
	}
}

func TestExprHandler_EvaluateError(t *testing.T) {
	reg, err := LoadDefinitions(strings.NewReader(`badge: '"[" + label + "]"'`))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	handler, _ := reg.Lookup("badge")

	// The label argument is absent, so the concatenation fails at runtime.
	_, err = handler.Expand(context.Background(), &lang.Call{Name: "badge"})
	if !errors.Is(err, ErrEvaluateDefinition) {
		t.Fatalf("expected ErrEvaluateDefinition, got %v", err)
	}
}

func TestLoadDefinitions_RenderIntegration(t *testing.T) {
	reg, err := LoadDefinitions(strings.NewReader(`shout: 'upper(text) + "!"'`))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	doc := lang.ParseString(context.Background(), `say {{ shout(text="go") }}`)

	out, err := doc.Render(context.Background(), reg)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if out != "say GO!" {
		t.Errorf("Render() = %q", out)
	}
}
