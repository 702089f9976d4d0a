package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test looking up values succeeds, then fails
func TestLookup(t *testing.T) {
	for key, val := range keywords {

		// Obviously this will pass.
		if LookupIdentifier(string(key)) != val {
			t.Errorf("Lookup of %s failed", key)
		}

		// Once the keywords are uppercase they'll no longer
		// match - so we find them as identifiers.
		if LookupIdentifier(strings.ToUpper(string(key))) != IDENT {
			t.Errorf("Lookup of %s failed", key)
		}
	}
}

func TestPosition(t *testing.T) {
	tok := Token{
		Type:    IDENT,
		Literal: "item",
		StartPosition: Position{
			Line:   2,
			Column: 0,
		},
	}
	// Switches to 1-indexed
	require.Equal(t, 3, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
}

func TestAdvance(t *testing.T) {
	start := Position{Char: 10, LineStart: 4, Line: 1, Column: 6, File: "page.weft"}
	end := start.Advance(4)
	require.Equal(t, 14, end.Char)
	require.Equal(t, 4, end.LineStart)
	require.Equal(t, 1, end.Line)
	require.Equal(t, 10, end.Column)
	require.Equal(t, "page.weft", end.File)
}

func TestIsValid(t *testing.T) {
	require.False(t, NoPos.IsValid())
	require.True(t, Position{File: "page.weft"}.IsValid())
	require.True(t, Position{Char: 3}.IsValid())
}
