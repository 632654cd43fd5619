package report

import (
	"strings"

	"github.com/roach88/falsify/runner"
	"github.com/roach88/falsify/stringify"
)

// Status glyphs for execution-summary lines.
const (
	glyphSuccess = "√"
	glyphFailure = "×"
	glyphSkipped = "!"
)

// indentMarker is repeated (depth-1) times in front of each line.
const indentMarker = ". "

// RenderSummary renders an execution forest as indented text: a header
// line, then one line per node in pre-order, parents before children and
// siblings in the order they were tried.
//
// The traversal is iterative. Shrink chains can be arbitrarily deep and a
// recursive walk would tie the renderable depth to the goroutine stack.
func RenderSummary(forest []*runner.ExecutionNode) string {
	var b strings.Builder
	b.WriteString("Execution summary:")

	type frame struct {
		node  *runner.ExecutionNode
		depth int
	}
	stack := make([]frame, 0, len(forest))
	// Children push in reverse so they pop in original order; roots too.
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, frame{forest[i], 1})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.WriteString("\n")
		b.WriteString(strings.Repeat(indentMarker, f.depth-1))
		b.WriteString(glyph(f.node.Status))
		b.WriteString(" ")
		b.WriteString(nodeText(f.node.Value))

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
	return b.String()
}

func glyph(s runner.ExecStatus) string {
	switch s {
	case runner.ExecSuccess:
		return glyphSuccess
	case runner.ExecFailure:
		return glyphFailure
	case runner.ExecSkipped:
		return glyphSkipped
	default:
		return "?"
	}
}

// nodeText renders a node's value. Trial values are argument tuples;
// anything else renders through the same formatter.
func nodeText(v any) string {
	if tuple, ok := v.([]any); ok {
		return stringify.Tuple(tuple)
	}
	return stringify.Any(v)
}
