package desugar

import (
	"fmt"
	"strings"

	"github.com/weft-lang/weft/ast"
	"github.com/weft-lang/weft/errors"
)

// failf builds the fatal diagnostic for a construct violation. The
// context slice is ordered ancestor to descendant; the most specific
// node carrying a valid position anchors the report. When no context
// node has one, the diagnostic is raised without a location.
func (p *Pass) failf(code errors.ErrorCode, context []ast.Node, format string, args ...interface{}) *errors.RewriteError {
	e := &errors.RewriteError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Filename: p.filename,
	}
	for i := len(context) - 1; i >= 0; i-- {
		node := context[i]
		if node == nil || !node.Pos().IsValid() {
			continue
		}
		start, end := node.Pos(), node.End()
		if start.File != "" {
			e.Filename = start.File
		}
		e.Start = start
		e.End = end
		e.Line = start.LineNumber()
		e.Column = start.ColumnNumber()
		if end.Line == start.Line {
			// End positions are exclusive, so the zero-indexed end column
			// equals the one-based column of the final character.
			e.EndColumn = end.Column
		}
		if start.Line >= 0 && start.Line < len(p.lines) {
			e.SourceLine = p.lines[start.Line]
		}
		break
	}
	return e
}

func splitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
