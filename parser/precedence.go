package parser

import "github.com/weft-lang/weft/internal/token"

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	TERNARY     // ? :
	NULLISH     // ??
	OR          // ||
	AND         // &&
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -X or !X
	CALL        // myFunction(X)
	INDEX       // list[index], obj.attr
)

// Precedences for each token type
var precedences = map[token.Type]int{
	token.QUESTION:  TERNARY,
	token.NULLISH:   NULLISH,
	token.OR:        OR,
	token.AND:       AND,
	token.EQ:        EQUALS,
	token.NOT_EQ:    EQUALS,
	token.LT:        LESSGREATER,
	token.LT_EQUALS: LESSGREATER,
	token.GT:        LESSGREATER,
	token.GT_EQUALS: LESSGREATER,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.SLASH:     PRODUCT,
	token.ASTERISK:  PRODUCT,
	token.MOD:       PRODUCT,
	token.LPAREN:    CALL,
	token.LBRACKET:  INDEX,
	token.PERIOD:    INDEX,
}
