package sql

import (
	"fmt"
	"strings"
)

// TreePrinter accumulates a node label plus its children's already
// rendered sub-trees, and prints them with the box-drawing connectors
// LogicNode.String() implementations use throughout sql/plan.
type TreePrinter struct {
	node     string
	children []string
}

// NewTreePrinter returns an empty printer; call WriteNode once, then
// WriteChildren with the (already stringified) sub-trees.
func NewTreePrinter() *TreePrinter {
	return new(TreePrinter)
}

// WriteNode sets the node's own label, formatted like fmt.Sprintf.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) {
	p.node = fmt.Sprintf(format, args...)
}

// WriteChildren appends each child's rendering, indenting every line
// after the first with the connector appropriate to the child's
// position (last child gets an "L" corner, others a "T").
func (p *TreePrinter) WriteChildren(children ...string) {
	p.children = append(p.children, children...)
}

func (p *TreePrinter) String() string {
	var sb strings.Builder
	sb.WriteString(p.node)
	sb.WriteByte('\n')

	for i, child := range p.children {
		last := i == len(p.children)-1
		lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
		for j, line := range lines {
			switch {
			case j == 0 && last:
				sb.WriteString(" └─ ")
			case j == 0 && !last:
				sb.WriteString(" ├─ ")
			case last:
				sb.WriteString("    ")
			default:
				sb.WriteString(" │  ")
			}
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
