package desugar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
)

// convert runs the pattern conversion on the expression inside the
// element <let var={input} value={v}>x</let>.
func convert(t *testing.T, input string) (ast.Pattern, error) {
	t.Helper()
	doc := parse(t, "<let var={"+input+"} value={v}>x</let>")
	el := doc.Stmts[0].(*ast.Element)
	expr := el.Attrs[0].Value.(*ast.Embed).X
	pass := New(WithFilename("test.weft"))
	return pass.pattern(expr, []ast.Node{el})
}

func TestPatternConversion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x", "x"},
		{"[a, b]", "[a, b]"},
		{"[a, [b, c]]", "[a, [b, c]]"},
		{"{a, b}", "{a, b}"},
		{"{a: x, b: y}", "{a: x, b: y}"},
		{"{a: [x, y]}", "{a: [x, y]}"},
		{"[{a, b}, c]", "[{a, b}, c]"},
		{"{outer: {inner}}", "{outer: {inner}}"},
		{"[]", "[]"},
		{"{}", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pattern, err := convert(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, pattern.String())
		})
	}
}

func TestPatternMirrorsExpressionStructure(t *testing.T) {
	pattern, err := convert(t, "{a: [x, y], b}")
	require.NoError(t, err)

	mapPattern, ok := pattern.(*ast.MapPattern)
	require.True(t, ok)
	require.Len(t, mapPattern.Entries, 2)

	require.Equal(t, "a", mapPattern.Entries[0].Key.Name)
	listPattern, ok := mapPattern.Entries[0].Value.(*ast.ListPattern)
	require.True(t, ok)
	require.Len(t, listPattern.Elements, 2)

	// Shorthand entries bind the key's own identifier.
	require.Equal(t, "b", mapPattern.Entries[1].Key.Name)
	require.Same(t, mapPattern.Entries[1].Key, mapPattern.Entries[1].Value)
}

func TestPatternRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"call", "f(x)"},
		{"member access", "a.b"},
		{"index", "a[0]"},
		{"arithmetic", "a + b"},
		{"literal", "42"},
		{"string literal", `"s"`},
		{"nil", "nil"},
		{"string key", `{"a": x}`},
		{"nested bad element", "[a, f(x)]"},
		{"nested bad map value", "{a: f(x)}"},
		{"ternary", "a ? b : c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convert(t, tt.input)
			require.Error(t, err)
			rewriteError, ok := err.(*errors.RewriteError)
			require.True(t, ok)
			require.Equal(t, errors.E2006, rewriteError.Code)
			require.Contains(t, rewriteError.Message, "invalid binding pattern")
		})
	}
}

func TestPatternErrorAnchorsAtSmallestNode(t *testing.T) {
	// <let var={[a, f(x)]} ...>: the diagnostic points at f(x), not at
	// the whole element.
	input := "<let var={[a, f(x)]} value={v}>x</let>"
	err := rewriteErr(t, input)
	require.Equal(t, errors.E2006, err.Code)
	require.Equal(t, 1, err.Line)
	require.Equal(t, 15, err.Column) // the "f" of f(x)
}
