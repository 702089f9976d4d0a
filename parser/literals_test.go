package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weft-lang/weft/ast"
)

func TestParseInt(t *testing.T) {
	expr := parseExpr(t, "42")
	i, ok := expr.(*ast.Int)
	require.True(t, ok)
	require.Equal(t, int64(42), i.Value)
	require.Equal(t, "42", i.String())
}

func TestParseIntOutOfRange(t *testing.T) {
	err := parseFails(t, "{99999999999999999999}")
	require.Contains(t, err.Error(), "invalid integer: 99999999999999999999")
}

func TestParseFloat(t *testing.T) {
	expr := parseExpr(t, "3.14")
	f, ok := expr.(*ast.Float)
	require.True(t, ok)
	require.Equal(t, 3.14, f.Value)
	require.Equal(t, "3.14", f.String())
}

func TestParseBool(t *testing.T) {
	b, ok := parseExpr(t, "true").(*ast.Bool)
	require.True(t, ok)
	require.True(t, b.Value)

	b, ok = parseExpr(t, "false").(*ast.Bool)
	require.True(t, ok)
	require.False(t, b.Value)
}

func TestParseNil(t *testing.T) {
	_, ok := parseExpr(t, "nil").(*ast.Nil)
	require.True(t, ok)
}

func TestParseString(t *testing.T) {
	s, ok := parseExpr(t, `"hello"`).(*ast.String)
	require.True(t, ok)
	require.Equal(t, "hello", s.Value)
	require.Equal(t, `"hello"`, s.String())
}

func TestParseStringEscapes(t *testing.T) {
	s, ok := parseExpr(t, `"a\nb\t\"c\""`).(*ast.String)
	require.True(t, ok)
	require.Equal(t, "a\nb\t\"c\"", s.Value)
}

func TestParseStringErrors(t *testing.T) {
	err := parseFails(t, `{"oops}`)
	require.Contains(t, err.Error(), "unterminated string literal")

	err = parseFails(t, `{"bad\q"}`)
	require.Contains(t, err.Error(), `invalid escape sequence \q`)
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[]", "[]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1, 2,]", "[1, 2]"},
		{`[1, 2.5, "three", true, nil]`, `[1, 2.5, "three", true, nil]`},
		{"[[1, 2], [3]]", "[[1, 2], [3]]"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			_, ok := expr.(*ast.List)
			require.True(t, ok)
			require.Equal(t, tt.want, expr.String())
		})
	}
}

func TestParseMap(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"{}", "{}"},
		{`{name: "x"}`, `{name: "x"}`},
		{`{name: "x", count: 2}`, `{name: "x", count: 2}`},
		{"{a, b}", "{a, b}"},
		{`{id, label: item.title}`, "{id, label: item.title}"},
		{`{"key": v}`, `{"key": v}`},
		{`{a: 1,}`, "{a: 1}"},
		{"{outer: {inner: 1}}", "{outer: {inner: 1}}"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			_, ok := expr.(*ast.Map)
			require.True(t, ok)
			require.Equal(t, tt.want, expr.String())
		})
	}
}

func TestParseMapShorthand(t *testing.T) {
	m := parseExpr(t, "{a, b}").(*ast.Map)
	require.Len(t, m.Items, 2)
	require.Nil(t, m.Items[0].Value)
	require.Nil(t, m.Items[1].Value)
}

func TestParseMapErrors(t *testing.T) {
	err := parseFails(t, "{{1: x}}")
	require.Contains(t, err.Error(), "invalid map key (expected an identifier or string)")

	err = parseFails(t, `{{"k"}}`)
	require.Contains(t, err.Error(), "string keys require an explicit value")
}
