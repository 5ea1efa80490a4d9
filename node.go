package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
)

// Node is a node in a Huffman tree.  A leaf carries a Symbol and no children;
// an internal node carries exactly two children and no Symbol.  Nodes are
// never modified after they are created.
type Node struct {
	weight uint64
	symbol Symbol
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{weight: weight, symbol: symbol}
}

func newInternal(left *Node, right *Node) *Node {
	// Compute weight using saturating addition
	weight := left.weight + right.weight
	if weight < left.weight {
		weight = math.MaxUint64
	}
	return &Node{weight: weight, symbol: InvalidSymbol, left: left, right: right}
}

// Weight returns the total frequency of all leaves under this node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the Symbol of a leaf.  For an internal node, it returns
// (InvalidSymbol, false).
func (n *Node) Symbol() (Symbol, bool) {
	if !n.IsLeaf() {
		return InvalidSymbol, false
	}
	return n.symbol, true
}

// Left returns the child reached by a 0 bit, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a 1 bit, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Leaves returns the number of leaves in the tree rooted at this node.
func (n *Node) Leaves() int {
	var count int
	stack := []*Node{n}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsLeaf() {
			count++
			continue
		}
		stack = append(stack, top.right, top.left)
	}
	return count
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// node to the given writer.  Each line shows the branch taken from the
// parent, the weight, and (for leaves) the symbol.
func (n *Node) Dump(w io.Writer) (int64, error) {
	type stackItem struct {
		node  *Node
		depth int
		label string
	}

	var buf bytes.Buffer
	buf.WriteString("Node{\n")
	stack := []stackItem{{node: n}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		buf.WriteByte('\t')
		if top.depth > 0 {
			buf.WriteString(strings.Repeat("  ", top.depth-1))
			buf.WriteString(top.label)
			buf.WriteString(": ")
		}
		fmt.Fprintf(&buf, "%d", top.node.weight)
		if top.node.IsLeaf() {
			fmt.Fprintf(&buf, " %s", top.node.symbol)
		}
		buf.WriteByte('\n')

		if !top.node.IsLeaf() {
			stack = append(stack,
				stackItem{top.node.right, top.depth + 1, "1"},
				stackItem{top.node.left, top.depth + 1, "0"})
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
