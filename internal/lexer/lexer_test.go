package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weft-lang/weft/internal/token"
)

func TestMarkup(t *testing.T) {
	input := `<ul class="wide"><li>Hello</li></ul>`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LT, "<"},
		{token.IDENT, "ul"},
		{token.IDENT, "class"},
		{token.ASSIGN, "="},
		{token.STRING, "wide"},
		{token.GT, ">"},
		{token.LT, "<"},
		{token.IDENT, "li"},
		{token.GT, ">"},
		{token.TEXT, "Hello"},
		{token.LT_SLASH, "</"},
		{token.IDENT, "li"},
		{token.GT, ">"},
		{token.LT_SLASH, "</"},
		{token.IDENT, "ul"},
		{token.GT, ">"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestDashedName(t *testing.T) {
	input := `<else-if test={done}></else-if>`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LT, "<"},
		{token.IDENT, "else-if"},
		{token.IDENT, "test"},
		{token.ASSIGN, "="},
		{token.LBRACE, "{"},
		{token.IDENT, "done"},
		{token.RBRACE, "}"},
		{token.GT, ">"},
		{token.LT_SLASH, "</"},
		{token.IDENT, "else-if"},
		{token.GT, ">"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestExpressionTokens(t *testing.T) {
	input := `{a.b(1, 2.5) == "x" && !c || d <= e ?? f ? [g] : {h: nil, i}}`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LBRACE, "{"},
		{token.IDENT, "a"},
		{token.PERIOD, "."},
		{token.IDENT, "b"},
		{token.LPAREN, "("},
		{token.INT, "1"},
		{token.COMMA, ","},
		{token.FLOAT, "2.5"},
		{token.RPAREN, ")"},
		{token.EQ, "=="},
		{token.STRING, "x"},
		{token.AND, "&&"},
		{token.BANG, "!"},
		{token.IDENT, "c"},
		{token.OR, "||"},
		{token.IDENT, "d"},
		{token.LT_EQUALS, "<="},
		{token.IDENT, "e"},
		{token.NULLISH, "??"},
		{token.IDENT, "f"},
		{token.QUESTION, "?"},
		{token.LBRACKET, "["},
		{token.IDENT, "g"},
		{token.RBRACKET, "]"},
		{token.COLON, ":"},
		{token.LBRACE, "{"},
		{token.IDENT, "h"},
		{token.COLON, ":"},
		{token.NIL, "nil"},
		{token.COMMA, ","},
		{token.IDENT, "i"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - Literal wrong, expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestMarkupInsideExpression(t *testing.T) {
	input := `{ok ? <b>Yes</b> : nil}`
	tests := []token.Type{
		token.LBRACE,
		token.IDENT,
		token.QUESTION,
		token.LT,
		token.IDENT,
		token.GT,
		token.TEXT,
		token.LT_SLASH,
		token.IDENT,
		token.GT,
		token.COLON,
		token.NIL,
		token.RBRACE,
		token.EOF,
	}
	l := New(input)
	for i, expected := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, expected, tok.Type)
		}
	}
}

func TestLessThanStaysComparison(t *testing.T) {
	input := `{a < b}`
	tests := []token.Type{
		token.LBRACE,
		token.IDENT,
		token.LT,
		token.IDENT,
		token.RBRACE,
		token.EOF,
	}
	l := New(input)
	for i, expected := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, expected, tok.Type)
		}
	}
	// After the comparison operator the markup frame stack is unchanged.
	require.Len(t, l.frames, 1)
}

func TestFragments(t *testing.T) {
	input := `<>a<>b</></>`
	tests := []struct {
		expectedType    token.Type
		expectedLiteral string
	}{
		{token.LT_GT, "<>"},
		{token.TEXT, "a"},
		{token.LT_GT, "<>"},
		{token.TEXT, "b"},
		{token.LT_SLASH_GT, "</>"},
		{token.LT_SLASH_GT, "</>"},
		{token.EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
	}
}

func TestSelfClosingInExpression(t *testing.T) {
	input := `{show ? <hr /> : nil}`
	tests := []token.Type{
		token.LBRACE,
		token.IDENT,
		token.QUESTION,
		token.LT,
		token.IDENT,
		token.SLASH_GT,
		token.COLON,
		token.NIL,
		token.RBRACE,
		token.EOF,
	}
	l := New(input)
	for i, expected := range tests {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong, expected=%q, got=%q", i, expected, tok.Type)
		}
	}
}

func TestTextPositions(t *testing.T) {
	input := "line one\n<b>x</b>"
	l := New(input)
	l.SetFilename("page.weft")

	tok, err := l.Next()
	require.Nil(t, err)
	require.Equal(t, token.TEXT, tok.Type)
	require.Equal(t, "line one\n", tok.Literal)
	require.Equal(t, 0, tok.StartPosition.Line)
	require.Equal(t, 0, tok.StartPosition.Column)
	require.Equal(t, "page.weft", tok.StartPosition.File)

	tok, err = l.Next()
	require.Nil(t, err)
	require.Equal(t, token.LT, tok.Type)
	require.Equal(t, 1, tok.StartPosition.Line)
	require.Equal(t, 0, tok.StartPosition.Column)
	require.Equal(t, 9, tok.StartPosition.Char)
}

func TestStringEscapes(t *testing.T) {
	input := `<a href="a\"b\n">x</a>`
	l := New(input)
	var strTok token.Token
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type == token.STRING {
			strTok = tok
		}
		if tok.Type == token.EOF {
			break
		}
	}
	require.Equal(t, "a\"b\n", strTok.Literal)
}

func TestUnterminatedString(t *testing.T) {
	input := `{a == "oops}`
	l := New(input)
	for {
		tok, err := l.Next()
		if err != nil {
			require.Equal(t, token.ILLEGAL, tok.Type)
			require.Contains(t, err.Error(), "unterminated string")
			return
		}
		if tok.Type == token.EOF {
			t.Fatal("expected an unterminated string error")
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	input := `{a # b}`
	l := New(input)
	for {
		tok, err := l.Next()
		if err != nil {
			require.Equal(t, token.ILLEGAL, tok.Type)
			return
		}
		if tok.Type == token.EOF {
			t.Fatal("expected an illegal character error")
		}
	}
}

func TestGetLineText(t *testing.T) {
	input := "first\n<b attr={x}>second</b>\nthird"
	l := New(input)
	var braceTok token.Token
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		if tok.Type == token.LBRACE {
			braceTok = tok
		}
		if tok.Type == token.EOF {
			break
		}
	}
	require.Equal(t, "<b attr={x}>second</b>", l.GetLineText(braceTok))
}

func TestNestedBracesInContainer(t *testing.T) {
	input := `<let var={{a, b}} value={obj}>x</let>`
	var types []token.Type
	l := New(input)
	for {
		tok, err := l.Next()
		require.Nil(t, err)
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	expected := []token.Type{
		token.LT, token.IDENT, // <let
		token.IDENT, token.ASSIGN, // var=
		token.LBRACE, token.LBRACE, // {{
		token.IDENT, token.COMMA, token.IDENT, // a, b
		token.RBRACE, token.RBRACE, // }}
		token.IDENT, token.ASSIGN, // value=
		token.LBRACE, token.IDENT, token.RBRACE, // {obj}
		token.GT,       // >
		token.TEXT,     // x
		token.LT_SLASH, // </
		token.IDENT,    // let
		token.GT,       // >
		token.EOF,
	}
	require.Equal(t, expected, types)
}
