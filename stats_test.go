package huffcode

import (
	"math"
	"testing"
)

func TestResult_Stats(t *testing.T) {
	type testRow struct {
		input       string
		encodedBits uint64
		fixedBits   uint64
		entropy     float64
	}

	testData := [...]testRow{
		{
			input:       "aaaa",
			encodedBits: 4,
			fixedBits:   4,
			entropy:     0,
		},
		{
			input:       "ab",
			encodedBits: 2,
			fixedBits:   2,
			entropy:     1,
		},
		{
			input:       "aaabbc",
			encodedBits: 9,
			fixedBits:   12,
			entropy:     -(0.5*math.Log2(0.5) + (1.0/3)*math.Log2(1.0/3) + (1.0/6)*math.Log2(1.0/6)),
		},
		{
			input:       "abcde",
			encodedBits: 12,
			fixedBits:   15,
			entropy:     math.Log2(5),
		},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			result, err := Analyze(SymbolsFromString(row.input), nil)
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			stats := result.Stats()
			if stats.InputLength != uint64(len(row.input)) {
				t.Errorf("expected InputLength %d, got %d", len(row.input), stats.InputLength)
			}
			if stats.EncodedBits != row.encodedBits || stats.EncodedBits != result.Output.Len() {
				t.Errorf("expected EncodedBits %d, got %d (output has %d)", row.encodedBits, stats.EncodedBits, result.Output.Len())
			}
			if stats.FixedWidthBits != row.fixedBits {
				t.Errorf("expected FixedWidthBits %d, got %d", row.fixedBits, stats.FixedWidthBits)
			}
			if math.Abs(stats.Entropy-row.entropy) > 1e-9 {
				t.Errorf("expected Entropy %f, got %f", row.entropy, stats.Entropy)
			}
			if stats.Entropy > stats.AverageCodeLength+1e-9 {
				t.Errorf("Entropy %f exceeds AverageCodeLength %f", stats.Entropy, stats.AverageCodeLength)
			}
			if stats.Symbols >= 2 && stats.AverageCodeLength >= stats.Entropy+1 {
				t.Errorf("AverageCodeLength %f is not within 1 bit of Entropy %f", stats.AverageCodeLength, stats.Entropy)
			}
		})
	}
}

func TestStats_String(t *testing.T) {
	result, err := Analyze(SymbolsFromString("aaabbc"), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	expectString := "(6 symbols in 9 bits instead of 12, 1.500 bits/symbol, entropy 1.459 bits/symbol)"
	actualString := result.Stats().String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(CountFrequencies(nil), CodeTable{})
	if stats != (Stats{}) {
		t.Errorf("expected zero Stats, got %+v", stats)
	}
}
