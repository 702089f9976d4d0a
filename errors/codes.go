package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Parse errors
//   - E2xxx: Rewrite errors
type ErrorCode string

const (
	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unterminated string literal
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Mismatched closing tag
	E1006 ErrorCode = "E1006" // Expected identifier
	E1007 ErrorCode = "E1007" // Unclosed element
	E1008 ErrorCode = "E1008" // Invalid number literal
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1010 ErrorCode = "E1010" // Invalid escape sequence
	E1011 ErrorCode = "E1011" // Duplicate attribute

	// Rewrite errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unknown attribute
	E2002 ErrorCode = "E2002" // Missing required attribute
	E2003 ErrorCode = "E2003" // Invalid attribute value
	E2004 ErrorCode = "E2004" // Misplaced else-if element
	E2005 ErrorCode = "E2005" // Misplaced else element
	E2006 ErrorCode = "E2006" // Invalid binding pattern
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unterminated string literal",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "mismatched closing tag",
	E1006: "expected identifier",
	E1007: "unclosed element",
	E1008: "invalid number literal",
	E1009: "maximum nesting depth exceeded",
	E1010: "invalid escape sequence",
	E1011: "duplicate attribute",

	E2001: "unknown attribute",
	E2002: "missing required attribute",
	E2003: "invalid attribute value",
	E2004: "misplaced else-if element",
	E2005: "misplaced else element",
	E2006: "invalid binding pattern",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '2':
		return "rewrite"
	default:
		return "unknown"
	}
}
