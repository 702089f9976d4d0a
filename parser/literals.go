package parser

import (
	"strconv"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
	"github.com/weft-lang/weft/internal/token"
)

// Literal parsing methods for the Parser.
// This file contains methods that parse literal values:
// - Integers and floats
// - Booleans and nil
// - Strings
// - Lists and maps

func (p *Parser) parseInt() (ast.Node, bool) {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.setCodedTokenError(errors.E1008, tok, "invalid integer: %s", tok.Literal)
		return nil, false
	}
	return &ast.Int{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: value}, true
}

func (p *Parser) parseFloat() (ast.Node, bool) {
	tok := p.curToken
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.setCodedTokenError(errors.E1008, tok, "invalid float: %s", tok.Literal)
		return nil, false
	}
	return &ast.Float{ValuePos: tok.StartPosition, Literal: tok.Literal, Value: value}, true
}

func (p *Parser) parseBoolean() (ast.Node, bool) {
	return &ast.Bool{
		ValuePos: p.curToken.StartPosition,
		Literal:  p.curToken.Literal,
		Value:    p.curTokenIs(token.TRUE),
	}, true
}

func (p *Parser) parseNil() (ast.Node, bool) {
	return &ast.Nil{NilPos: p.curToken.StartPosition}, true
}

func (p *Parser) parseString() (ast.Node, bool) {
	return p.newString(p.curToken), true
}

// newString builds a string literal node. The lexer has already removed
// the quotes and processed escape sequences, so the node's Literal is
// reconstructed as quoted source text.
func (p *Parser) newString(tok token.Token) *ast.String {
	return &ast.String{
		ValuePos: tok.StartPosition,
		Literal:  strconv.Quote(tok.Literal),
		Value:    tok.Literal,
	}
}

func (p *Parser) parseList() (ast.Node, bool) {
	lbrack := p.curToken.StartPosition
	items, ok := p.parseExprList(token.RBRACKET, "a list literal")
	if !ok {
		return nil, false
	}
	return &ast.List{Lbrack: lbrack, Items: items, Rbrack: p.curToken.StartPosition}, true
}

// parseMap parses a map literal like {name: "x", count}. Identifier keys
// without a value are shorthand for binding the variable of that name.
func (p *Parser) parseMap() (ast.Node, bool) {
	lbrace := p.curToken.StartPosition
	var items []ast.MapItem
	for !p.peekTokenIs(token.RBRACE) {
		if err := p.nextToken(); err != nil {
			return nil, false
		}
		var key ast.Expr
		switch p.curToken.Type {
		case token.IDENT:
			key = p.newIdent(p.curToken)
		case token.STRING:
			key = p.newString(p.curToken)
		default:
			p.setCodedTokenError(errors.E1006, p.curToken, "invalid map key (expected an identifier or string)")
			return nil, false
		}
		item := ast.MapItem{Key: key}
		if p.peekTokenIs(token.COLON) {
			p.nextToken() // move to the ":"
			if err := p.nextToken(); err != nil { // move past the ":"
				return nil, false
			}
			value := p.parseExpression(LOWEST)
			if value == nil {
				return nil, false
			}
			item.Value = value
		} else if _, isString := key.(*ast.String); isString {
			p.setTokenError(p.curToken, "string keys require an explicit value")
			return nil, false
		}
		items = append(items, item)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken() // move to the ","
	}
	if !p.expectPeek("a map literal", token.RBRACE) {
		return nil, false
	}
	return &ast.Map{Lbrace: lbrace, Items: items, Rbrace: p.curToken.StartPosition}, true
}
