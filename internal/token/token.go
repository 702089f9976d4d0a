// Package token defines the tokens produced when lexing Weft source text.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Advance returns a new Position advanced by n bytes.
// Used for computing End positions from a start position.
// Note: This assumes the advance does not cross line boundaries.
func (p Position) Advance(n int) Position {
	return Position{
		Char:      p.Char + n,
		LineStart: p.LineStart,
		Line:      p.Line,
		Column:    p.Column + n,
		File:      p.File,
	}
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	AND         Type = "&&"
	ARROW       Type = "=>"
	ASSIGN      Type = "="
	ASTERISK    Type = "*"
	BANG        Type = "!"
	COLON       Type = ":"
	COMMA       Type = ","
	EOF         Type = "EOF"
	EQ          Type = "=="
	FALSE       Type = "FALSE"
	FLOAT       Type = "FLOAT"
	GT          Type = ">"
	GT_EQUALS   Type = ">="
	IDENT       Type = "IDENT"
	ILLEGAL     Type = "ILLEGAL"
	INT         Type = "INT"
	LBRACE      Type = "{"
	LBRACKET    Type = "["
	LPAREN      Type = "("
	LT          Type = "<"
	LT_EQUALS   Type = "<="
	LT_GT       Type = "<>"
	LT_SLASH    Type = "</"
	LT_SLASH_GT Type = "</>"
	MINUS       Type = "-"
	MOD         Type = "%"
	NIL         Type = "NIL"
	NOT_EQ      Type = "!="
	NULLISH     Type = "??"
	OR          Type = "||"
	PERIOD      Type = "."
	PLUS        Type = "+"
	QUESTION    Type = "?"
	RBRACE      Type = "}"
	RBRACKET    Type = "]"
	RPAREN      Type = ")"
	SLASH       Type = "/"
	SLASH_GT    Type = "/>"
	STRING      Type = "STRING"
	TEXT        Type = "TEXT"
	TRUE        Type = "TRUE"
)

// Reserved keywords, recognized in expression position only. Markup tag and
// attribute names are never keywords.
var keywords = map[string]Type{
	"false": FALSE,
	"nil":   NIL,
	"true":  TRUE,
}

// LookupIdentifier used to determinate whether identifier is keyword nor not
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
