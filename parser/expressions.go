package parser

import (
	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
	"github.com/weft-lang/weft/internal/token"
)

// Expression parsing methods for the Parser.
// This file contains methods that parse expression constructs:
// - Identifiers and prefix/infix expressions
// - Grouped expressions and arrow functions
// - Ternary expressions
// - Index expressions
// - Call expressions
// - Attribute access

func (p *Parser) parseIdent() (ast.Node, bool) {
	if p.curToken.Literal == "" {
		p.setCodedTokenError(errors.E1006, p.curToken, "invalid identifier")
		return nil, false
	}
	ident := p.newIdent(p.curToken)

	// Check for single-param arrow function: x => expr
	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // move to the "=>"
		return p.parseArrowBody(ident.NamePos, []ast.Pattern{ident}, ident.End())
	}

	return ident, true
}

func (p *Parser) parsePrefixExpr() (ast.Node, bool) {
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	if err := p.nextToken(); err != nil {
		return nil, false
	}
	right := p.parseExpression(PREFIX)
	if right == nil {
		p.setTokenError(p.curToken, "invalid prefix expression")
		return nil, false
	}
	return &ast.Prefix{OpPos: opPos, Op: op, X: right}, true
}

func (p *Parser) parseInfixExpr(leftNode ast.Node) (ast.Node, bool) {
	left, ok := leftNode.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid expression")
		return nil, false
	}
	opPos := p.curToken.StartPosition
	op := p.curToken.Literal
	precedence := p.currentPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		p.setTokenError(p.curToken, "invalid expression")
		return nil, false
	}
	return &ast.Infix{X: left, OpPos: opPos, Op: op, Y: right}, true
}

// parseTernary parses cond ? ifTrue : ifFalse. The else branch parses at
// the lowest precedence, which makes chains like a ? x : b ? y : z
// right-associative.
func (p *Parser) parseTernary(condNode ast.Node) (ast.Node, bool) {
	cond, ok := condNode.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid ternary expression")
		return nil, false
	}
	question := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move past the "?"
		return nil, false
	}
	ifTrue := p.parseExpression(LOWEST)
	if ifTrue == nil {
		return nil, false
	}
	if !p.expectPeek("a ternary expression", token.COLON) {
		return nil, false
	}
	colon := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move past the ":"
		return nil, false
	}
	ifFalse := p.parseExpression(LOWEST)
	if ifFalse == nil {
		return nil, false
	}
	return &ast.Ternary{
		Cond:     cond,
		Question: question,
		IfTrue:   ifTrue,
		Colon:    colon,
		IfFalse:  ifFalse,
	}, true
}

func (p *Parser) parseGroupedExpr() (ast.Node, bool) {
	lparen := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move past the "("
		return nil, false
	}

	// Check for empty params arrow function: () => ...
	if p.curTokenIs(token.RPAREN) {
		rparen := p.curToken.StartPosition
		if p.peekTokenIs(token.ARROW) {
			p.nextToken() // move to the "=>"
			return p.parseArrowBody(lparen, nil, rparen)
		}
		p.setTokenError(p.curToken, "empty parentheses require arrow function syntax")
		return nil, false
	}

	// Parse the items. The arrow is not visible until the parameter list
	// ends, so items parse as expressions and convert to patterns after.
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil, false
	}
	items := []ast.Expr{first}

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // move to the ","
		p.nextToken() // move past the ","
		item := p.parseExpression(LOWEST)
		if item == nil {
			return nil, false
		}
		items = append(items, item)
	}

	if !p.expectPeek("a grouped expression or arrow function", token.RPAREN) {
		return nil, false
	}
	rparen := p.curToken.StartPosition

	// Check for arrow function
	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // move to the "=>"
		params, ok := p.convertArrowParams(items)
		if !ok {
			return nil, false
		}
		return p.parseArrowBody(lparen, params, rparen)
	}

	// Not an arrow function - must be a single grouped expression
	if len(items) > 1 {
		p.setTokenError(p.curToken, "comma-separated expressions require arrow function syntax: (x, y) => ...")
		return nil, false
	}
	return first, true
}

// parseArrowBody parses the body of an arrow function. The current token
// is the "=>".
func (p *Parser) parseArrowBody(lparen token.Position, params []ast.Pattern, rparen token.Position) (ast.Node, bool) {
	arrow := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move past the "=>"
		return nil, false
	}
	body := p.parseExpression(LOWEST)
	if body == nil {
		p.setTokenError(p.curToken, "invalid arrow function body")
		return nil, false
	}
	return &ast.Arrow{
		Lparen: lparen,
		Params: params,
		Rparen: rparen,
		Arrow:  arrow,
		Body:   body,
	}, true
}

// convertArrowParams reinterprets parenthesized items as arrow function
// parameters.
func (p *Parser) convertArrowParams(items []ast.Expr) ([]ast.Pattern, bool) {
	params := make([]ast.Pattern, 0, len(items))
	for _, item := range items {
		pattern, ok := p.exprToPattern(item)
		if !ok {
			return nil, false
		}
		params = append(params, pattern)
	}
	return params, true
}

// exprToPattern converts an expression to the binding pattern it spells.
// Identifiers bind a name, list literals of patterns destructure
// positionally, and map literals of identifier keys destructure by key.
func (p *Parser) exprToPattern(expr ast.Expr) (ast.Pattern, bool) {
	switch v := expr.(type) {
	case *ast.Ident:
		return v, true
	case *ast.List:
		elements := make([]ast.Pattern, 0, len(v.Items))
		for _, item := range v.Items {
			element, ok := p.exprToPattern(item)
			if !ok {
				return nil, false
			}
			elements = append(elements, element)
		}
		return &ast.ListPattern{Lbrack: v.Lbrack, Elements: elements, Rbrack: v.Rbrack}, true
	case *ast.Map:
		entries := make([]ast.MapPatternEntry, 0, len(v.Items))
		for _, item := range v.Items {
			key, ok := item.Key.(*ast.Ident)
			if !ok {
				p.setCodedTokenError(errors.E1006, p.curToken, "invalid destructuring pattern (expected an identifier key)")
				return nil, false
			}
			entry := ast.MapPatternEntry{Key: key}
			if item.Value == nil {
				// Shorthand {a} binds the key name itself
				entry.Value = key
			} else {
				value, ok := p.exprToPattern(item.Value)
				if !ok {
					return nil, false
				}
				entry.Value = value
			}
			entries = append(entries, entry)
		}
		return &ast.MapPattern{Lbrace: v.Lbrace, Entries: entries, Rbrace: v.Rbrace}, true
	}
	p.setCodedTokenError(errors.E1006, p.curToken, "invalid arrow function parameter (expected an identifier or destructuring pattern)")
	return nil, false
}

func (p *Parser) parseIndex(leftNode ast.Node) (ast.Node, bool) {
	left, ok := leftNode.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid index expression")
		return nil, false
	}
	lbrack := p.curToken.StartPosition
	if err := p.nextToken(); err != nil { // move to the index expression
		return nil, false
	}
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil, false
	}
	if !p.expectPeek("an index expression", token.RBRACKET) {
		return nil, false
	}
	return &ast.Index{X: left, Lbrack: lbrack, Index: index, Rbrack: p.curToken.StartPosition}, true
}

func (p *Parser) parseCall(functionNode ast.Node) (ast.Node, bool) {
	function, ok := functionNode.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid call expression")
		return nil, false
	}
	lparen := p.curToken.StartPosition
	items, ok := p.parseExprList(token.RPAREN, "a call expression")
	if !ok {
		return nil, false
	}
	args := make([]ast.Node, 0, len(items))
	for _, item := range items {
		args = append(args, item)
	}
	return &ast.Call{Fun: function, Lparen: lparen, Args: args, Rparen: p.curToken.StartPosition}, true
}

func (p *Parser) parseGetAttr(objNode ast.Node) (ast.Node, bool) {
	obj, ok := objNode.(ast.Expr)
	if !ok {
		p.setTokenError(p.curToken, "invalid attribute expression")
		return nil, false
	}
	period := p.curToken.StartPosition
	if err := p.nextToken(); err != nil {
		return nil, false
	}
	if !p.curTokenIs(token.IDENT) {
		p.setCodedTokenError(errors.E1006, p.curToken, "expected an identifier after %q", ".")
		return nil, false
	}
	return &ast.GetAttr{X: obj, Period: period, Attr: p.newIdent(p.curToken)}, true
}

// parseExprList parses comma-separated expressions until the end token.
// The current token is the opening delimiter on entry and the end token
// on success. A trailing comma before the end token is allowed.
func (p *Parser) parseExprList(end token.Type, context string) ([]ast.Expr, bool) {
	var items []ast.Expr
	if p.peekTokenIs(end) {
		p.nextToken()
		return items, true
	}
	if err := p.nextToken(); err != nil {
		return nil, false
	}
	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil, false
	}
	items = append(items, first)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // move to the ","
		if p.peekTokenIs(end) {
			break
		}
		p.nextToken() // move past the ","
		item := p.parseExpression(LOWEST)
		if item == nil {
			return nil, false
		}
		items = append(items, item)
	}
	if !p.expectPeek(context, end) {
		return nil, false
	}
	return items, true
}
