package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Result holds every artifact produced by the encoding pipeline.
type Result struct {
	Frequencies FrequencyMap
	Root        *Node
	Table       CodeTable
	Output      EncodedOutput
}

// Encode counts the symbols of input, builds a Huffman code for them, and
// returns input encoded with that code.  An empty input yields
// ErrEmptyAlphabet.
func Encode(input []Symbol) (EncodedOutput, error) {
	result, err := Analyze(input, nil)
	if err != nil {
		return EncodedOutput{}, err
	}
	return result.Output, nil
}

// EncodeString is like Encode, with one Symbol per rune of str.
func EncodeString(str string) (EncodedOutput, error) {
	return Encode(SymbolsFromString(str))
}

// Analyze runs the whole pipeline over input and returns each intermediate
// artifact along with the encoded output.  Each stage consumes the complete
// output of the one before it.  No partial Result is returned on error.
func Analyze(input []Symbol, o *Options) (*Result, error) {
	freq := CountFrequenciesOptions(input, o)

	root, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	table, err := GenerateCodeTable(root)
	if err != nil {
		return nil, err
	}

	output, err := EncodeSymbolsOptions(table, input, o)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frequencies: freq,
		Root:        root,
		Table:       table,
		Output:      output,
	}, nil
}

// Stats summarizes how well the code compresses the input.
func (r *Result) Stats() Stats {
	return ComputeStats(r.Frequencies, r.Table)
}

// Dump writes a programmer-readable debugging dump of every artifact to the
// given writer.
func (r *Result) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	_, _ = r.Frequencies.Dump(&buf)
	_, _ = r.Root.Dump(&buf)
	_, _ = r.Table.Dump(&buf)
	fmt.Fprintf(&buf, "Output{%d bits} = %q\n", r.Output.Len(), r.Output.String())
	return buf.WriteTo(w)
}

// EncodeSymbols encodes input by concatenating the Code of each Symbol, in
// input order.  If the table lacks a Symbol that occurs in input, the result
// is an *UnknownSymbolError for its first occurrence.
func EncodeSymbols(table CodeTable, input []Symbol) (EncodedOutput, error) {
	return EncodeSymbolsOptions(table, input, nil)
}

// EncodeSymbolsOptions is like EncodeSymbols, but splits long inputs across
// multiple goroutines as directed by o.  The per-goroutine outputs are
// joined in input order, so the result is the same as
// EncodeSymbols(table, input).
func EncodeSymbolsOptions(table CodeTable, input []Symbol, o *Options) (EncodedOutput, error) {
	o = checkOptions(o)
	spans := o.partition(len(input))
	if len(spans) == 1 {
		return encodeSpan(table, input, 0)
	}

	parts := make([]EncodedOutput, len(spans))
	errs := make([]error, len(spans))
	var wg sync.WaitGroup
	wg.Add(len(spans))
	for index, sp := range spans {
		go func(index int, sp span) {
			defer wg.Done()
			parts[index], errs[index] = encodeSpan(table, input[sp.start:sp.end], sp.start)
		}(index, sp)
	}
	wg.Wait()

	// The spans are in input order, so the first error is also the one
	// with the lowest position.
	var total uint64
	for index, err := range errs {
		if err != nil {
			return EncodedOutput{}, err
		}
		total += parts[index].Len()
	}

	ow := newOutputWriter(total)
	for _, part := range parts {
		if err := ow.WriteOutput(part); err != nil {
			return EncodedOutput{}, err
		}
	}
	return ow.Finish()
}

func encodeSpan(table CodeTable, input []Symbol, offset int) (EncodedOutput, error) {
	ow := newOutputWriter(uint64(len(input)) * uint64(table.minSize))
	for index, symbol := range input {
		hc, found := table.codes[symbol]
		if !found {
			return EncodedOutput{}, &UnknownSymbolError{Symbol: symbol, Position: offset + index}
		}
		if err := ow.WriteCode(hc); err != nil {
			return EncodedOutput{}, err
		}
	}
	return ow.Finish()
}
