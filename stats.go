package huffcode

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Stats describes how a CodeTable performs on the input it was built from.
type Stats struct {
	// Symbols is the number of distinct symbols.
	Symbols int

	// InputLength is the number of symbols in the input.
	InputLength uint64

	// EncodedBits is the length of the encoded output.
	EncodedBits uint64

	// FixedWidthBits is the length of the output under the shortest
	// fixed-width code for the same alphabet.
	FixedWidthBits uint64

	// Entropy is the Shannon entropy of the symbol distribution, in bits
	// per symbol.  No prefix-free code averages fewer bits per symbol.
	Entropy float64

	// AverageCodeLength is EncodedBits / InputLength.
	AverageCodeLength float64

	// Efficiency is Entropy / AverageCodeLength.
	Efficiency float64

	// Ratio is EncodedBits / FixedWidthBits.
	Ratio float64
}

// ComputeStats computes the Stats of encoding the input summarized by freq
// with table.  The table must cover every symbol of freq.
func ComputeStats(freq FrequencyMap, table CodeTable) Stats {
	stats := Stats{
		Symbols:     freq.Len(),
		InputLength: freq.total,
	}
	if freq.total == 0 {
		return stats
	}

	n := float64(freq.total)
	for _, symbol := range freq.symbols {
		count := freq.counts[symbol]
		hc, found := table.codes[symbol]
		assert.Assertf(found, "symbol %s is missing from the code table", symbol)

		stats.EncodedBits += count * uint64(hc.Size)
		p := float64(count) / n
		stats.Entropy -= p * math.Log2(p)
	}

	stats.FixedWidthBits = freq.total * uint64(fixedWidth(freq.Len()))
	stats.AverageCodeLength = float64(stats.EncodedBits) / n
	if stats.AverageCodeLength != 0 {
		stats.Efficiency = stats.Entropy / stats.AverageCodeLength
	}
	if stats.FixedWidthBits != 0 {
		stats.Ratio = float64(stats.EncodedBits) / float64(stats.FixedWidthBits)
	}
	return stats
}

// String returns a one-line summary of the Stats.
func (stats Stats) String() string {
	return fmt.Sprintf("(%d symbols in %d bits instead of %d, %.3f bits/symbol, entropy %.3f bits/symbol)",
		stats.InputLength, stats.EncodedBits, stats.FixedWidthBits, stats.AverageCodeLength, stats.Entropy)
}

var _ fmt.Stringer = Stats{}
