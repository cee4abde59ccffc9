package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLiteral_String(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want string
	}{
		{name: "true", lit: NewBool(true), want: "true"},
		{name: "false", lit: NewBool(false), want: "false"},
		{name: "int", lit: NewInt(-42), want: "-42"},
		{name: "float", lit: NewFloat(0.25), want: "0.25"},
		{name: "whole float keeps fraction", lit: NewFloat(3), want: "3.0"},
		{name: "plain string", lit: NewString("hi"), want: `"hi"`},
		{
			name: "string with double quote",
			lit:  NewString(`say "hi"`),
			want: `'say "hi"'`,
		},
		{
			name: "string with both quotes",
			lit:  NewString(`"it's"`),
			want: "`\"it's\"`",
		},
		{name: "empty array", lit: NewArray(), want: "[]"},
		{
			name: "mixed array",
			lit:  NewArray(NewInt(1), NewString("a"), NewBool(true)),
			want: `[1, "a", true]`,
		},
		{
			name: "nested array",
			lit:  NewArray(NewArray(NewFloat(1.5))),
			want: "[[1.5]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.String(); got != tt.want {
				t.Errorf("String() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestLiteral_ToNative(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want any
	}{
		{name: "bool", lit: NewBool(true), want: true},
		{name: "string", lit: NewString("x"), want: "x"},
		{name: "int", lit: NewInt(7), want: int64(7)},
		{name: "float", lit: NewFloat(2.5), want: 2.5},
		{
			name: "array",
			lit:  NewArray(NewInt(1), NewArray(NewString("a"))),
			want: []any{int64(1), []any{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.lit.ToNative()); diff != "" {
				t.Errorf("ToNative() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindBool:   "Bool",
		KindString: "String",
		KindInt:    "Int",
		KindFloat:  "Float",
		KindArray:  "Array",
		Kind(99):   "Unknown",
	}

	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, expected %q", kind, got, want)
		}
	}
}
