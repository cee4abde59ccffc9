package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/shortcode/lang"
)

// Predefined errors (sentinel values).
var (
	ErrReadDefinitions    = lang.NewError("failed to read definitions")
	ErrDecodeDefinitions  = lang.NewError("failed to decode definitions")
	ErrCompileDefinition  = lang.NewError("failed to compile definition")
	ErrEvaluateDefinition = lang.NewError("failed to evaluate definition")
)

// Definitions maps directive names to expr program source. This is the
// YAML schema of a definitions file:
//
//	upper: 'upper(text)'
//	repeat: 'join("", 1..count | map(word))'
//	badge: '"[" + label + "]"'
//
// Each program is evaluated with the call's arguments bound as variables
// (converted to native Go values); unreferenced or absent arguments
// evaluate as nil. Expressions live entirely on the embedder's side of
// the registry boundary: directive arguments themselves remain literals.
type Definitions map[string]string

// LoadDefinitions reads a YAML definitions file and compiles each entry
// into a registered handler.
func LoadDefinitions(r io.Reader) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadDefinitions.Wrap(err)
	}

	var defs Definitions

	err = yaml.Unmarshal(data, &defs)
	if err != nil {
		return nil, ErrDecodeDefinitions.Wrap(err)
	}

	m := New()

	for name, src := range defs {
		prog, err := expr.Compile(src,
			expr.Env(map[string]any{}),
			expr.AllowUndefinedVariables(),
		)
		if err != nil {
			return nil, ErrCompileDefinition.Wrap(err).
				With(slog.String("name", name))
		}

		m.Register(name, &exprHandler{program: prog})
	}

	return m, nil
}

// exprHandler expands a call by running a compiled expr program with the
// call's arguments as the environment.
type exprHandler struct {
	program *vm.Program
}

// Expand implements [lang.Handler].
func (h *exprHandler) Expand(
	_ context.Context,
	call *lang.Call,
) (string, error) {
	env := make(map[string]any, len(call.Args))

	// Duplicate names resolve to the last occurrence, matching
	// [lang.Call.Arg].
	for name, value := range call.Arguments() {
		env[name] = value.ToNative()
	}

	result, err := vm.Run(h.program, env)
	if err != nil {
		return "", ErrEvaluateDefinition.Wrap(err)
	}

	return formatResult(result), nil
}

// formatResult renders an expr result as output text.
func formatResult(v any) string {
	switch val := v.(type) {
	case nil:
		return ""

	case string:
		return val

	case bool:
		return strconv.FormatBool(val)

	case int:
		return strconv.Itoa(val)

	case int64:
		return strconv.FormatInt(val, 10)

	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)

	default:
		return fmt.Sprintf("%v", val)
	}
}
