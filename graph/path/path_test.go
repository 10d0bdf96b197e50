package path_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/aiclass/generic/graph/path"
)

func TestNew(t *testing.T) {
	p := path.New("Arad")
	qt.Assert(t, qt.Equals(p.Len(), 1))
	qt.Assert(t, qt.Equals(p.Cost(), 0.0))
	qt.Assert(t, qt.Equals(p.End(), "Arad"))
	qt.Assert(t, qt.Equals(p.Start(), "Arad"))
	qt.Assert(t, qt.DeepEquals(p.Nodes(), []string{"Arad"}))
}

func TestAppend(t *testing.T) {
	p := path.New("Arad").Append("Sibiu", 140).Append("Fagaras", 99)
	qt.Assert(t, qt.Equals(p.Len(), 3))
	qt.Assert(t, qt.Equals(p.Cost(), 239.0))
	qt.Assert(t, qt.Equals(p.End(), "Fagaras"))
	qt.Assert(t, qt.Equals(p.Start(), "Arad"))
	qt.Assert(t, qt.DeepEquals(p.Nodes(), []string{"Arad", "Sibiu", "Fagaras"}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(p.All()), p.Nodes()))
}

func TestAppendDoesNotModifyReceiver(t *testing.T) {
	base := path.New(0).Append(1, 1)
	a := base.Append(2, 5)
	b := base.Append(3, 7)

	qt.Assert(t, qt.DeepEquals(base.Nodes(), []int{0, 1}))
	qt.Assert(t, qt.Equals(base.Cost(), 1.0))
	qt.Assert(t, qt.DeepEquals(a.Nodes(), []int{0, 1, 2}))
	qt.Assert(t, qt.Equals(a.Cost(), 6.0))
	qt.Assert(t, qt.DeepEquals(b.Nodes(), []int{0, 1, 3}))
	qt.Assert(t, qt.Equals(b.Cost(), 8.0))
}

func TestNodesReturnsCopy(t *testing.T) {
	p := path.New("A").Append("B", 1)
	nodes := p.Nodes()
	nodes[0] = "Z"
	qt.Assert(t, qt.DeepEquals(p.Nodes(), []string{"A", "B"}))
}

func TestLengthMatchesNodes(t *testing.T) {
	p := path.New(0)
	for i := 1; i < 50; i++ {
		p = p.Append(i, 0.5)
		qt.Assert(t, qt.Equals(p.Len(), len(p.Nodes())))
	}
	qt.Assert(t, qt.Equals(p.Cost(), 24.5))
}

func TestString(t *testing.T) {
	p := path.New("Arad").Append("Sibiu", 140).Append("Rimnicu Vilcea", 80)
	qt.Assert(t, qt.Equals(p.String(), "Arad -> Sibiu -> Rimnicu Vilcea (cost:220, length:3)"))

	q := path.New(1).Append(2, 0.25)
	qt.Assert(t, qt.Equals(q.String(), "1 -> 2 (cost:0.25, length:2)"))
}

func TestFormatCost(t *testing.T) {
	qt.Assert(t, qt.Equals(path.FormatCost(418), "418"))
	qt.Assert(t, qt.Equals(path.FormatCost(2.5), "2.5"))
	qt.Assert(t, qt.Equals(path.FormatCost(0), "0"))
}

func ExamplePath_Append() {
	p := path.New("Arad")
	q := p.Append("Zerind", 75)
	fmt.Println(p)
	fmt.Println(q)
	// Output:
	// Arad (cost:0, length:1)
	// Arad -> Zerind (cost:75, length:2)
}
