package huffcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a Huffman tree whose leaves are exactly the symbols of
// freq, each weighted by its count.
//
// The tree is built greedily: all leaves go into a min-heap, and while more
// than one node remains the two lightest nodes are popped and replaced by a
// new internal node whose left child is the first one popped and whose right
// child is the second.
//
// Ties between nodes of equal weight are broken by creation order: leaves are
// created first, in ascending Symbol order, and each merged node is created
// after every node that exists at the time of the merge.  The earlier-created
// node is popped first.  The resulting tree is therefore a pure function of
// freq.
//
// A FrequencyMap with a single symbol yields a single leaf.  An empty
// FrequencyMap yields ErrEmptyAlphabet.
//
func BuildTree(freq FrequencyMap) (*Node, error) {
	numSymbols := freq.Len()
	if numSymbols == 0 {
		return nil, ErrEmptyAlphabet
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]heapItem, 0, numSymbols)}
	for index, symbol := range freq.symbols {
		leaf := newLeaf(symbol, freq.counts[symbol])
		h.list = append(h.list, heapItem{node: leaf, seq: uint64(index)})
	}
	h.Init()

	// Step 2: merge the two lightest nodes until only the root is left.

	nextSeq := uint64(numSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, heapItem{node: newInternal(a.node, b.node), seq: nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem).node
	assert.Assertf(root.weight == freq.total, "root weight %d != total frequency %d", root.weight, freq.total)
	assert.Assertf(nextSeq == uint64(2*numSymbols-1), "built %d nodes for %d symbols", nextSeq, numSymbols)
	return root, nil
}

// type heapItem + type nodeHeap {{{

type heapItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []heapItem
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
