package huffcode

import (
	"fmt"
)

// NewCodeTable constructs a CodeTable from codes obtained elsewhere, e.g. a
// table agreed upon with another party.  The argument is copied.
//
// Not all inputs are valid.  Every Symbol must be valid, every Code must hold
// between 1 and 64 bits, and the codes must be prefix-free.  Unlike a table
// from GenerateCodeTable, the codes need not be complete: some bit strings
// may be left unassigned.
//
func NewCodeTable(codes map[Symbol]Code) (CodeTable, error) {
	if len(codes) == 0 {
		return CodeTable{}, ErrEmptyAlphabet
	}

	copied := make(map[Symbol]Code, len(codes))
	for symbol, hc := range codes {
		if !symbol.IsValid() {
			return CodeTable{}, fmt.Errorf("%w: symbol %s is negative", ErrInvalidCode, symbol)
		}
		if hc.Size == 0 {
			return CodeTable{}, fmt.Errorf("%w: symbol %s has an empty code", ErrInvalidCode, symbol)
		}
		if hc.Size > maxBitsPerCode {
			return CodeTable{}, fmt.Errorf("%w: symbol %s has a %d-bit code, max %d", ErrInvalidCode, symbol, hc.Size, maxBitsPerCode)
		}
		copied[symbol] = MakeCode(hc.Size, hc.Bits)
	}

	t := makeCodeTable(copied)
	if err := t.Validate(); err != nil {
		return CodeTable{}, err
	}
	return t, nil
}

// Validate checks that no code in the table is a prefix of another.  It
// returns a *PrefixConflictError describing the first conflict found, in
// order of (code length, Symbol).
func (t CodeTable) Validate() error {
	sorted := make(bySize, 0, len(t.symbols))
	for _, symbol := range t.symbols {
		sorted = append(sorted, symbolAndSize{symbol, t.codes[symbol].Size})
	}
	sorted.Sort()

	// Shorter codes are seen first, so only the prefixes of each new code
	// need to be checked against the codes seen so far.
	seen := make(map[Code]Symbol, len(sorted))
	for _, item := range sorted {
		hc := t.codes[item.symbol]
		for size := t.minSize; size <= hc.Size; size++ {
			prefix := MakeCode(size, hc.Bits>>(hc.Size-size))
			if other, found := seen[prefix]; found {
				return &PrefixConflictError{
					Prefix:     other,
					PrefixCode: prefix,
					Other:      item.symbol,
					OtherCode:  hc,
				}
			}
		}
		seen[hc] = item.symbol
	}
	return nil
}

// IsComplete returns true iff every sufficiently long bit string starts with
// some code in the table, i.e. the Kraft sum of the code lengths is exactly
// 1.  A Huffman code over two or more symbols is always complete; the one-bit
// code assigned to a single-symbol alphabet is not.
func (t CodeTable) IsComplete() bool {
	if len(t.symbols) == 0 {
		return false
	}

	var countArray [maxBitsPerCode + 1]uint64
	for _, hc := range t.codes {
		countArray[hc.Size]++
	}

	// Pair up the nodes at each depth, from the deepest level upward.  A
	// complete code leaves no node unpaired and ends with a single root.
	var carry uint64
	for size := int(t.maxSize); size >= 1; size-- {
		n := countArray[size] + carry
		if n%2 != 0 {
			return false
		}
		carry = n / 2
	}
	return carry == 1
}
