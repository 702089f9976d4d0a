// Package lexer turns Weft source text into tokens. The lexer is modal:
// document text, tag interiors, and expression containers each have their
// own token rules, and the lexer switches between them as braces and tags
// open and close.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/weft-lang/weft/internal/token"
)

type ctxKind int

const (
	ctxMarkup ctxKind = iota // document text and element children
	ctxExpr                  // inside an expression container
)

// frame tracks one nesting level of context. The bottom frame is the
// document itself; an expression container pushes a ctxExpr frame, and
// markup appearing inside an expression pushes a ctxMarkup frame on top
// of that.
type frame struct {
	kind       ctxKind
	braceDepth int  // open "{" within an expression frame
	elemDepth  int  // open elements within a markup frame
	inTag      bool // between "<" and the ">" that ends a tag
	closing    bool // the open tag is a closing tag ("</...")
}

// Lexer tokenizes Weft source text.
type Lexer struct {
	input     string
	pos       int // current byte offset
	line      int // current 0-indexed line number
	lineStart int // byte offset of the current line's first byte
	filename  string
	prev      token.Type // most recent token type, for "<" disambiguation
	frames    []frame
}

// New creates a Lexer for the given input, positioned at the start of
// the document.
func New(input string) *Lexer {
	return &Lexer{
		input:  input,
		frames: []frame{{kind: ctxMarkup}},
	}
}

// SetFilename sets the file name carried on token positions.
func (l *Lexer) SetFilename(filename string) {
	l.filename = filename
}

// Filename returns the file name associated with this input.
func (l *Lexer) Filename() string {
	return l.filename
}

// GetLineText returns the full source line on which the token starts.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	if end := strings.IndexByte(l.input[start:], '\n'); end >= 0 {
		return l.input[start : start+end]
	}
	return l.input[start:]
}

// Next returns the next token. The token rules in effect depend on the
// current context: document text, tag interior, or expression.
func (l *Lexer) Next() (token.Token, error) {
	f := l.top()
	if f.kind == ctxExpr {
		return l.nextExpr()
	}
	if f.inTag {
		return l.nextTag()
	}
	return l.nextText()
}

// nextText lexes document text and the markup punctuation that
// interrupts it.
func (l *Lexer) nextText() (token.Token, error) {
	if l.pos >= len(l.input) {
		return l.emit(token.EOF, ""), nil
	}
	switch l.input[l.pos] {
	case '<':
		switch {
		case l.hasPrefix("</>"):
			tok := l.emit(token.LT_SLASH_GT, "</>")
			l.closeElement()
			return tok, nil
		case l.hasPrefix("</"):
			tok := l.emit(token.LT_SLASH, "</")
			f := l.top()
			f.inTag = true
			f.closing = true
			return tok, nil
		case l.hasPrefix("<>"):
			tok := l.emit(token.LT_GT, "<>")
			l.top().elemDepth++
			return tok, nil
		default:
			tok := l.emit(token.LT, "<")
			f := l.top()
			f.inTag = true
			f.closing = false
			return tok, nil
		}
	case '{':
		tok := l.emit(token.LBRACE, "{")
		l.push(frame{kind: ctxExpr})
		return tok, nil
	}
	return l.readText(), nil
}

// nextTag lexes the interior of a tag: names, "=", quoted strings,
// expression containers, and the ">" or "/>" that ends the tag.
func (l *Lexer) nextTag() (token.Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return l.emit(token.EOF, ""), nil
	}
	c := l.input[l.pos]
	switch {
	case c == '>':
		tok := l.emit(token.GT, ">")
		f := l.top()
		f.inTag = false
		if f.closing {
			f.closing = false
			l.closeElement()
		} else {
			f.elemDepth++
		}
		return tok, nil
	case l.hasPrefix("/>"):
		tok := l.emit(token.SLASH_GT, "/>")
		f := l.top()
		f.inTag = false
		l.closeSelfContained()
		return tok, nil
	case c == '{':
		tok := l.emit(token.LBRACE, "{")
		l.push(frame{kind: ctxExpr})
		return tok, nil
	case c == '=':
		return l.emit(token.ASSIGN, "="), nil
	case c == '.':
		return l.emit(token.PERIOD, "."), nil
	case c == '"':
		return l.readString()
	case isNameStart(l.peekRune()):
		return l.readName(), nil
	}
	tok := l.emit(token.ILLEGAL, string(c))
	return tok, fmt.Errorf("unexpected character %q in tag", c)
}

// nextExpr lexes expression tokens inside a container.
func (l *Lexer) nextExpr() (token.Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return l.emit(token.EOF, ""), nil
	}
	c := l.input[l.pos]
	switch c {
	case '{':
		l.top().braceDepth++
		return l.emit(token.LBRACE, "{"), nil
	case '}':
		f := l.top()
		if f.braceDepth == 0 {
			tok := l.emit(token.RBRACE, "}")
			l.pop()
			return tok, nil
		}
		f.braceDepth--
		return l.emit(token.RBRACE, "}"), nil
	case '<':
		if l.hasPrefix("<=") {
			return l.emit(token.LT_EQUALS, "<="), nil
		}
		if l.operandEnded() {
			return l.emit(token.LT, "<"), nil
		}
		// A "<" in operand position starts markup rather than a
		// comparison.
		if l.hasPrefix("<>") {
			tok := l.emit(token.LT_GT, "<>")
			l.push(frame{kind: ctxMarkup, elemDepth: 1})
			return tok, nil
		}
		tok := l.emit(token.LT, "<")
		l.push(frame{kind: ctxMarkup, inTag: true})
		return tok, nil
	case '>':
		if l.hasPrefix(">=") {
			return l.emit(token.GT_EQUALS, ">="), nil
		}
		return l.emit(token.GT, ">"), nil
	case '=':
		if l.hasPrefix("==") {
			return l.emit(token.EQ, "=="), nil
		}
		if l.hasPrefix("=>") {
			return l.emit(token.ARROW, "=>"), nil
		}
		return l.emit(token.ASSIGN, "="), nil
	case '!':
		if l.hasPrefix("!=") {
			return l.emit(token.NOT_EQ, "!="), nil
		}
		return l.emit(token.BANG, "!"), nil
	case '&':
		if l.hasPrefix("&&") {
			return l.emit(token.AND, "&&"), nil
		}
		tok := l.emit(token.ILLEGAL, "&")
		return tok, fmt.Errorf("unexpected character %q (use && for logical and)", c)
	case '|':
		if l.hasPrefix("||") {
			return l.emit(token.OR, "||"), nil
		}
		tok := l.emit(token.ILLEGAL, "|")
		return tok, fmt.Errorf("unexpected character %q (use || for logical or)", c)
	case '?':
		if l.hasPrefix("??") {
			return l.emit(token.NULLISH, "??"), nil
		}
		return l.emit(token.QUESTION, "?"), nil
	case '+':
		return l.emit(token.PLUS, "+"), nil
	case '-':
		return l.emit(token.MINUS, "-"), nil
	case '*':
		return l.emit(token.ASTERISK, "*"), nil
	case '/':
		return l.emit(token.SLASH, "/"), nil
	case '%':
		return l.emit(token.MOD, "%"), nil
	case '(':
		return l.emit(token.LPAREN, "("), nil
	case ')':
		return l.emit(token.RPAREN, ")"), nil
	case '[':
		return l.emit(token.LBRACKET, "["), nil
	case ']':
		return l.emit(token.RBRACKET, "]"), nil
	case ',':
		return l.emit(token.COMMA, ","), nil
	case ':':
		return l.emit(token.COLON, ":"), nil
	case '.':
		return l.emit(token.PERIOD, "."), nil
	case '"':
		return l.readString()
	}
	if isDigit(c) {
		return l.readNumber(), nil
	}
	if isIdentStart(l.peekRune()) {
		return l.readIdent(), nil
	}
	r := l.peekRune()
	tok := l.emit(token.ILLEGAL, string(r))
	return tok, fmt.Errorf("unexpected character %q", r)
}

// readText consumes a run of document text ending at markup punctuation
// or end of input. Newlines are part of the text.
func (l *Lexer) readText() token.Token {
	start := l.position()
	begin := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '<' || c == '{' {
			break
		}
		if c == '\n' {
			l.pos++
			l.line++
			l.lineStart = l.pos
			continue
		}
		l.pos++
	}
	l.prev = token.TEXT
	return token.Token{
		Type:          token.TEXT,
		Literal:       l.input[begin:l.pos],
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// readName consumes a tag or attribute name. Names allow interior
// dashes, so else-if lexes as a single name.
func (l *Lexer) readName() token.Token {
	start := l.position()
	begin := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !isNameStart(r) && !unicode.IsDigit(r) && r != '-' {
			break
		}
		l.pos += size
	}
	l.prev = token.IDENT
	return token.Token{
		Type:          token.IDENT,
		Literal:       l.input[begin:l.pos],
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// readIdent consumes an identifier or keyword in expression context.
func (l *Lexer) readIdent() token.Token {
	start := l.position()
	begin := l.pos
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	literal := l.input[begin:l.pos]
	typ := token.LookupIdentifier(literal)
	l.prev = typ
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// readNumber consumes an integer or float literal.
func (l *Lexer) readNumber() token.Token {
	start := l.position()
	begin := l.pos
	typ := token.INT
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	// A period starts the fractional part only when a digit follows, so
	// 1.name still lexes as an attribute access.
	if l.pos+1 < len(l.input) && l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		typ = token.FLOAT
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	l.prev = typ
	return token.Token{
		Type:          typ,
		Literal:       l.input[begin:l.pos],
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

// readString consumes a double-quoted string literal and processes its
// escape sequences. The token literal is the unquoted value.
func (l *Lexer) readString() (token.Token, error) {
	start := l.position()
	l.pos++ // consume the opening quote
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			tok := token.Token{
				Type:          token.ILLEGAL,
				Literal:       sb.String(),
				StartPosition: start,
				EndPosition:   l.position(),
			}
			l.prev = token.ILLEGAL
			return tok, fmt.Errorf("unterminated string literal")
		}
		c := l.input[l.pos]
		if c == '"' {
			l.pos++
			break
		}
		if c == '\\' {
			if l.pos+1 >= len(l.input) {
				tok := token.Token{
					Type:          token.ILLEGAL,
					Literal:       sb.String(),
					StartPosition: start,
					EndPosition:   l.position(),
				}
				l.prev = token.ILLEGAL
				return tok, fmt.Errorf("unterminated string literal")
			}
			esc := l.input[l.pos+1]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				tok := token.Token{
					Type:          token.ILLEGAL,
					Literal:       sb.String(),
					StartPosition: start,
					EndPosition:   l.position(),
				}
				l.prev = token.ILLEGAL
				return tok, fmt.Errorf("invalid escape sequence \\%c", esc)
			}
			l.pos += 2
			continue
		}
		sb.WriteByte(c)
		l.pos++
	}
	l.prev = token.STRING
	return token.Token{
		Type:          token.STRING,
		Literal:       sb.String(),
		StartPosition: start,
		EndPosition:   l.position(),
	}, nil
}

// top returns the current context frame.
func (l *Lexer) top() *frame {
	return &l.frames[len(l.frames)-1]
}

func (l *Lexer) push(f frame) {
	l.frames = append(l.frames, f)
}

// pop removes the current frame. The document frame at the bottom of
// the stack is never removed.
func (l *Lexer) pop() {
	if len(l.frames) > 1 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

// closeElement records that one element has closed, popping the markup
// frame when markup nested in an expression finishes.
func (l *Lexer) closeElement() {
	f := l.top()
	if f.elemDepth > 0 {
		f.elemDepth--
	}
	if f.elemDepth == 0 && len(l.frames) > 1 {
		l.pop()
	}
}

// closeSelfContained handles the end of a self-closing tag, which opens
// no children. Markup nested in an expression pops immediately when the
// self-closing element was its root.
func (l *Lexer) closeSelfContained() {
	f := l.top()
	if f.elemDepth == 0 && len(l.frames) > 1 {
		l.pop()
	}
}

// operandEnded reports whether the previous token could terminate an
// operand, in which case a following "<" is the comparison operator
// rather than the start of markup.
func (l *Lexer) operandEnded() bool {
	switch l.prev {
	case token.IDENT, token.INT, token.FLOAT, token.STRING,
		token.TRUE, token.FALSE, token.NIL,
		token.RPAREN, token.RBRACKET:
		return true
	}
	return false
}

// skipSpace advances past whitespace, tracking line boundaries.
func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
			l.lineStart = l.pos
		default:
			return
		}
	}
}

// position returns the Position of the current offset.
func (l *Lexer) position() token.Position {
	return token.Position{
		Char:      l.pos,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.pos - l.lineStart,
		File:      l.filename,
	}
}

// emit produces a token for a literal known to start at the current
// offset, advancing past it. The literal must not contain newlines.
func (l *Lexer) emit(typ token.Type, literal string) token.Token {
	start := l.position()
	l.pos += len(literal)
	l.prev = typ
	return token.Token{
		Type:          typ,
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

func (l *Lexer) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
