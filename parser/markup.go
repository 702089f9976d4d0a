package parser

import (
	"fmt"
	"strings"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
	"github.com/weft-lang/weft/internal/token"
)

// Markup parsing methods for the Parser.
// This file contains methods that parse document constructs:
// - Top-level nodes
// - Elements, attributes, and tag names
// - Fragments
// - Text runs and expression containers

// parseDocNode parses one top-level node: a text run, an element, a
// fragment, or an expression container. A nil node with ok set to true
// means the node was insignificant whitespace and was dropped.
func (p *Parser) parseDocNode() (ast.Node, bool) {
	switch p.curToken.Type {
	case token.TEXT:
		text := p.newText(p.curToken)
		if !keepText(text) {
			return nil, true
		}
		return text, true
	case token.LBRACE:
		embed, ok := p.parseEmbed()
		if !ok {
			return nil, false
		}
		return embed, true
	case token.LT:
		return p.parseElement()
	case token.LT_GT:
		return p.parseFragment()
	case token.LT_SLASH, token.LT_SLASH_GT:
		p.setCodedTokenError(errors.E1001, p.curToken, "unexpected closing tag")
		return nil, false
	case token.ILLEGAL:
		return p.illegalToken()
	default:
		p.setCodedTokenError(errors.E1001, p.curToken, "unexpected %s at top level", tokenDescription(p.curToken))
		return nil, false
	}
}

// parseElement parses an element beginning at the current "<" token. The
// element may be self-closing or carry children terminated by a matching
// closing tag. Elements also occur in expression position, so this method
// doubles as a prefix parse function.
func (p *Parser) parseElement() (ast.Node, bool) {
	p.depth++
	if p.depth > p.maxDepth {
		p.setCodedTokenError(errors.E1009, p.curToken, "maximum nesting depth exceeded")
		p.depth--
		return nil, false
	}
	defer func() { p.depth-- }()

	lt := p.curToken.StartPosition
	if !p.expectPeek("an element", token.IDENT) {
		return nil, false
	}
	tag, ok := p.parseTagName()
	if !ok {
		return nil, false
	}
	attrs, ok := p.parseAttrs()
	if !ok {
		return nil, false
	}
	if p.peekTokenIs(token.SLASH_GT) {
		p.nextToken() // move to the "/>"
		return &ast.Element{
			Lt:          lt,
			Tag:         tag,
			Attrs:       attrs,
			SelfClosing: true,
			Close:       p.curToken.StartPosition,
		}, true
	}
	if !p.expectPeek("an element", token.GT) {
		return nil, false
	}
	children, ok := p.parseChildren(fmt.Sprintf("<%s> element", tag))
	if !ok {
		return nil, false
	}
	if p.curTokenIs(token.LT_SLASH_GT) {
		p.setCodedTokenError(errors.E1005, p.curToken, "mismatched closing tag </> (expected </%s>)", tag)
		return nil, false
	}
	// The current token is the "</" of the closing tag
	if !p.expectPeek("a closing tag", token.IDENT) {
		return nil, false
	}
	nameTok := p.curToken
	closeTag, ok := p.parseTagName()
	if !ok {
		return nil, false
	}
	if closeTag.String() != tag.String() {
		p.setError(NewParserError(ErrorOpts{
			Code:          errors.E1005,
			ErrType:       "parse error",
			Message:       fmt.Sprintf("mismatched closing tag </%s> (expected </%s>)", closeTag, tag),
			File:          p.l.Filename(),
			StartPosition: closeTag.Pos(),
			EndPosition:   closeTag.End(),
			SourceCode:    p.l.GetLineText(nameTok),
		}))
		return nil, false
	}
	if !p.expectPeek("a closing tag", token.GT) {
		return nil, false
	}
	return &ast.Element{
		Lt:       lt,
		Tag:      tag,
		Attrs:    attrs,
		Children: children,
		Close:    p.curToken.StartPosition,
	}, true
}

// parseTagName parses a tag name beginning at the current identifier
// token. Dotted names like ui.Button parse into attribute accesses.
func (p *Parser) parseTagName() (ast.Expr, bool) {
	var tag ast.Expr = p.newIdent(p.curToken)
	for p.peekTokenIs(token.PERIOD) {
		p.nextToken() // move to the "."
		period := p.curToken.StartPosition
		if !p.expectPeek("a tag name", token.IDENT) {
			return nil, false
		}
		tag = &ast.GetAttr{X: tag, Period: period, Attr: p.newIdent(p.curToken)}
	}
	return tag, true
}

// parseAttrs parses the attributes of the open tag the parser is inside.
// Attribute values are quoted strings or expression containers; a bare
// name is an attribute with no value.
func (p *Parser) parseAttrs() ([]*ast.Attr, bool) {
	var attrs []*ast.Attr
	seen := map[string]bool{}
	for p.peekTokenIs(token.IDENT) {
		p.nextToken() // move to the attribute name
		name := p.newIdent(p.curToken)
		if seen[name.Name] {
			p.setCodedTokenError(errors.E1011, p.curToken, "duplicate attribute %q", name.Name)
			return nil, false
		}
		seen[name.Name] = true
		attr := &ast.Attr{Name: name}
		if p.peekTokenIs(token.ASSIGN) {
			p.nextToken() // move to the "="
			switch {
			case p.peekTokenIs(token.STRING):
				p.nextToken()
				attr.Value = p.newString(p.curToken)
			case p.peekTokenIs(token.LBRACE):
				p.nextToken()
				embed, ok := p.parseEmbed()
				if !ok {
					return nil, false
				}
				attr.Value = embed
			default:
				p.setTokenError(p.peekToken, "invalid attribute value (expected a string or expression container)")
				return nil, false
			}
		}
		attrs = append(attrs, attr)
	}
	return attrs, true
}

// parseChildren parses child nodes until a closing tag is reached. On
// success the current token is the "</" or "</>" that ended the children.
// The context string names the enclosing construct for error messages.
func (p *Parser) parseChildren(context string) ([]ast.Node, bool) {
	var children []ast.Node
	for {
		if p.cancelled() {
			return nil, false
		}
		if err := p.nextToken(); err != nil {
			return nil, false
		}
		switch p.curToken.Type {
		case token.TEXT:
			if text := p.newText(p.curToken); keepText(text) {
				children = append(children, text)
			}
		case token.LBRACE:
			embed, ok := p.parseEmbed()
			if !ok {
				return nil, false
			}
			children = append(children, embed)
		case token.LT:
			child, ok := p.parseElement()
			if !ok {
				return nil, false
			}
			children = append(children, child)
		case token.LT_GT:
			child, ok := p.parseFragment()
			if !ok {
				return nil, false
			}
			children = append(children, child)
		case token.LT_SLASH, token.LT_SLASH_GT:
			return children, true
		case token.EOF:
			p.setCodedTokenError(errors.E1007, p.curToken, "unexpected end of file (unclosed %s)", context)
			return nil, false
		default:
			p.setCodedTokenError(errors.E1001, p.curToken, "unexpected %s in markup", tokenDescription(p.curToken))
			return nil, false
		}
	}
}

// parseFragment parses a fragment beginning at the current "<>" token.
func (p *Parser) parseFragment() (ast.Node, bool) {
	p.depth++
	if p.depth > p.maxDepth {
		p.setCodedTokenError(errors.E1009, p.curToken, "maximum nesting depth exceeded")
		p.depth--
		return nil, false
	}
	defer func() { p.depth-- }()

	open := p.curToken.StartPosition
	children, ok := p.parseChildren("fragment")
	if !ok {
		return nil, false
	}
	if p.curTokenIs(token.LT_SLASH) {
		p.setCodedTokenError(errors.E1005, p.curToken, "mismatched closing tag (expected </>)")
		return nil, false
	}
	return &ast.Fragment{
		Open:     open,
		Children: children,
		CloseTag: p.curToken.StartPosition,
	}, true
}

// parseEmbed parses an expression container beginning at the current "{"
// token.
func (p *Parser) parseEmbed() (*ast.Embed, bool) {
	lbrace := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move past the "{"
		return nil, false
	}
	if p.curTokenIs(token.RBRACE) {
		p.setCodedTokenError(errors.E1004, p.curToken, "empty expression container")
		return nil, false
	}
	x := p.parseExpression(LOWEST)
	if x == nil {
		return nil, false
	}
	if !p.expectPeek("an expression container", token.RBRACE) {
		return nil, false
	}
	return &ast.Embed{Lbrace: lbrace, X: x, Rbrace: p.curToken.StartPosition}, true
}

// newText creates a new Text node from a token.
func (p *Parser) newText(tok token.Token) *ast.Text {
	return &ast.Text{ValuePos: tok.StartPosition, Value: tok.Literal}
}

// keepText reports whether a text run is significant. Runs that are
// whitespace only and span a line break exist to indent markup and are
// dropped rather than kept as document content.
func keepText(text *ast.Text) bool {
	if strings.TrimSpace(text.Value) != "" {
		return true
	}
	return !strings.Contains(text.Value, "\n")
}
