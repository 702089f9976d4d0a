package ast

import (
	"bytes"
	"strings"

	"github.com/weft-lang/weft/internal/token"
)

// Ensure *Ident implements Pattern: a bare identifier binds one name.
func (x *Ident) patternNode() {}

// ListPattern is a pattern node that destructures a list positionally,
// as in ([first, second]) => first.
type ListPattern struct {
	Lbrack   token.Position // position of "["
	Elements []Pattern      // element patterns
	Rbrack   token.Position // position of "]"
}

func (x *ListPattern) patternNode() {}

func (x *ListPattern) Pos() token.Position { return x.Lbrack }
func (x *ListPattern) End() token.Position { return x.Rbrack.Advance(1) }

func (x *ListPattern) String() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(x.Elements))
	for _, el := range x.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// MapPatternEntry represents one binding in a map pattern. The entry is
// shorthand when Value is an *Ident with the same name as Key.
type MapPatternEntry struct {
	Key   *Ident  // the key being extracted
	Value Pattern // the pattern bound to the key's value
}

// MapPattern is a pattern node that destructures a map by key, as in
// ({name, age}) => name.
type MapPattern struct {
	Lbrace  token.Position    // position of "{"
	Entries []MapPatternEntry // bindings in source order
	Rbrace  token.Position    // position of "}"
}

func (x *MapPattern) patternNode() {}

func (x *MapPattern) Pos() token.Position { return x.Lbrace }
func (x *MapPattern) End() token.Position { return x.Rbrace.Advance(1) }

func (x *MapPattern) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, e := range x.Entries {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.Key.Name)
		if ident, ok := e.Value.(*Ident); !ok || ident.Name != e.Key.Name {
			out.WriteString(": ")
			out.WriteString(e.Value.String())
		}
	}
	out.WriteString("}")
	return out.String()
}
