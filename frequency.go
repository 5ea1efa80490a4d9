package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sync"
)

// FrequencyMap maps each distinct Symbol of an input sequence to the number
// of times it occurs.  A FrequencyMap is read-only once built.
type FrequencyMap struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// CountFrequencies scans input once and returns its FrequencyMap.  An empty
// input yields an empty FrequencyMap.
func CountFrequencies(input []Symbol) FrequencyMap {
	return CountFrequenciesOptions(input, nil)
}

// CountFrequenciesOptions is like CountFrequencies, but splits long inputs
// across multiple goroutines as directed by o.  The partial counts are merged,
// so the result is the same as CountFrequencies(input).
func CountFrequenciesOptions(input []Symbol, o *Options) FrequencyMap {
	o = checkOptions(o)
	spans := o.partition(len(input))
	if len(spans) == 1 {
		counts := make(map[Symbol]uint64)
		countInto(counts, input)
		return makeFrequencyMap(counts)
	}

	partials := make([]map[Symbol]uint64, len(spans))
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for index, sp := range spans {
		go func(index int, sp span) {
			defer wg.Done()
			counts := make(map[Symbol]uint64)
			countInto(counts, input[sp.start:sp.end])
			partials[index] = counts
		}(index, sp)
	}
	wg.Wait()

	counts := partials[0]
	for _, partial := range partials[1:] {
		for symbol, count := range partial {
			counts[symbol] += count
		}
	}
	return makeFrequencyMap(counts)
}

// MakeFrequencyMap builds a FrequencyMap from counts that were gathered
// elsewhere.  Symbols with a count of 0 are omitted.  The argument is copied.
func MakeFrequencyMap(counts map[Symbol]uint64) FrequencyMap {
	copied := make(map[Symbol]uint64, len(counts))
	for symbol, count := range counts {
		if count != 0 {
			copied[symbol] = count
		}
	}
	return makeFrequencyMap(copied)
}

func makeFrequencyMap(counts map[Symbol]uint64) FrequencyMap {
	symbols := make(bySymbol, 0, len(counts))
	var total uint64
	for symbol, count := range counts {
		symbols = append(symbols, symbol)
		// Compute total using saturating addition
		if sum := total + count; sum >= total {
			total = sum
		} else {
			total = math.MaxUint64
		}
	}
	symbols.Sort()
	return FrequencyMap{counts: counts, symbols: symbols, total: total}
}

func countInto(counts map[Symbol]uint64, input []Symbol) {
	for _, symbol := range input {
		counts[symbol]++
	}
}

// Len returns the number of distinct symbols.
func (fm FrequencyMap) Len() int {
	return len(fm.symbols)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (fm FrequencyMap) Total() uint64 {
	return fm.total
}

// Count returns the count for symbol, and whether symbol occurs at all.
func (fm FrequencyMap) Count(symbol Symbol) (uint64, bool) {
	count, found := fm.counts[symbol]
	return count, found
}

// Symbols returns the distinct symbols in ascending order.
func (fm FrequencyMap) Symbols() []Symbol {
	out := make([]Symbol, len(fm.symbols))
	copy(out, fm.symbols)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyMap to the
// given writer.
func (fm FrequencyMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyMap{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", fm.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", fm.total)
	for _, symbol := range fm.symbols {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbol, fm.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
