package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const expectedTree = `Filter((a.a1 = b.b1))
 └─ Join
     ├─ Scan(a)
     └─ Scan(b AS b)
`

func TestTreePrinter(t *testing.T) {
	scanA := NewTreePrinter()
	scanA.WriteNode("Scan(a)")

	scanB := NewTreePrinter()
	scanB.WriteNode("Scan(b AS b)")

	join := NewTreePrinter()
	join.WriteNode("Join")
	join.WriteChildren(
		scanA.String(),
		scanB.String(),
	)

	filter := NewTreePrinter()
	filter.WriteNode("Filter((%s = %s))", "a.a1", "b.b1")
	filter.WriteChildren(join.String())

	require.Equal(t, expectedTree, filter.String())
}
