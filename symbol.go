package huffcode

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
//
// A rune is a valid Symbol, and so is a byte.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is non-negative.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the string representation of this Symbol, as a quoted rune
// literal.
func (s Symbol) String() string {
	if s < 0 {
		return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
	}
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)

// SymbolsFromString returns one Symbol per rune of str.
func SymbolsFromString(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsFromBytes returns one Symbol per byte of data.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for index, b := range data {
		out[index] = Symbol(b)
	}
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
