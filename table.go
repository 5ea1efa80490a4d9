package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol of an alphabet to its Code.  The codes of a
// CodeTable are prefix-free: no code is a prefix of another.  A CodeTable is
// read-only once built.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols []Symbol
	minSize byte
	maxSize byte
}

// GenerateCodeTable derives a CodeTable from a Huffman tree.  Each leaf's
// code is the path from the root to that leaf, where taking the left child
// appends a 0 bit and taking the right child appends a 1 bit.
//
// If the root is itself a leaf, there are no paths to follow; that lone
// symbol is assigned the one-bit code "0" so that every code is non-empty and
// each input symbol contributes at least one output bit.
//
func GenerateCodeTable(root *Node) (CodeTable, error) {
	if root == nil {
		return CodeTable{}, ErrEmptyAlphabet
	}

	codes := make(map[Symbol]Code)
	if root.IsLeaf() {
		codes[root.symbol] = MakeCode(1, 0)
		return makeCodeTable(codes), nil
	}

	// Walk the tree with an explicit stack, so that heavily skewed trees
	// can't exhaust the goroutine stack.  Only internal nodes are pushed;
	// leaves are recorded as soon as they are seen.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint64(root.weight)+1)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child *Node
		var bit uint
		switch x {
		case 0:
			child, bit = top.node.left, 0
		case 1:
			child, bit = top.node.right, 1
		default:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
			continue
		}

		if top.code.Size >= maxBitsPerCode {
			return CodeTable{}, ErrCodeTooLong
		}
		code := top.code.Append(bit)

		if !child.IsLeaf() {
			stack = append(stack, stackItem{node: child, code: code})
			continue
		}

		_, dupe := codes[child.symbol]
		assert.Assertf(!dupe, "symbol %s appears in more than one leaf", child.symbol)
		codes[child.symbol] = code
	}

	return makeCodeTable(codes), nil
}

func makeCodeTable(codes map[Symbol]Code) CodeTable {
	symbols := make(bySymbol, 0, len(codes))
	var minSize, maxSize byte
	for symbol, hc := range codes {
		if len(symbols) == 0 {
			minSize = hc.Size
			maxSize = hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
		symbols = append(symbols, symbol)
	}
	symbols.Sort()
	return CodeTable{codes: codes, symbols: symbols, minSize: minSize, maxSize: maxSize}
}

// Len returns the number of symbols in the table.
func (t CodeTable) Len() int {
	return len(t.symbols)
}

// Lookup returns the Code for symbol, and whether the table covers symbol.
func (t CodeTable) Lookup(symbol Symbol) (Code, bool) {
	hc, found := t.codes[symbol]
	return hc, found
}

// Symbols returns the symbols covered by the table, in ascending order.
func (t CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// MinSize is the bit length of the shortest code.
func (t CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t CodeTable) MaxSize() byte {
	return t.maxSize
}

// SizeBySymbol returns the bit length of each Symbol's code.  Together with
// Canonical, this is all that another party needs to reconstruct an
// equivalent code.
func (t CodeTable) SizeBySymbol() map[Symbol]byte {
	out := make(map[Symbol]byte, len(t.codes))
	for symbol, hc := range t.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Canonical returns the canonical Huffman code with the same code lengths as
// this table, per the algorithm in RFC 1951 Section 3.2.2.  Shorter codes
// sort first, and codes of equal length are assigned in ascending Symbol
// order as consecutive integers.
func (t CodeTable) Canonical() CodeTable {
	if len(t.symbols) == 0 {
		return CodeTable{}
	}

	// Step 1: sort the symbols by (Size, Symbol) ascending.

	sorted := make(bySize, 0, len(t.symbols))
	for _, symbol := range t.symbols {
		sorted = append(sorted, symbolAndSize{symbol, t.codes[symbol].Size})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	codes := make(map[Symbol]Code, len(sorted))
	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol] = MakeCode(item.size, nextCode)
		nextCode++
	}

	return CodeTable{codes: codes, symbols: t.Symbols(), minSize: t.minSize, maxSize: t.maxSize}
}

// String returns a brief description of this CodeTable.
func (t CodeTable) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", len(t.symbols), t.minSize, t.maxSize)
}

var _ fmt.Stringer = CodeTable{}

// Dump writes a programmer-readable debugging dump of the CodeTable's current
// state to the given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for _, symbol := range t.symbols {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", symbol, t.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
