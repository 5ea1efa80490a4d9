// Package huffcode implements greedy (Huffman) prefix-free codes built from
// the observed frequencies of an input sequence, and encodes that sequence
// into a compact bit string.
//
// The pipeline runs in four stages, each of which is callable on its own:
//
//     CountFrequencies   → FrequencyMap
//     BuildTree          → *Node
//     GenerateCodeTable  → CodeTable
//     EncodeSymbols      → EncodedOutput
//
// Encode and Analyze run all four stages at once.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package huffcode
