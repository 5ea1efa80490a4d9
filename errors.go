package huffcode

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when a code is requested for an input
	// that contains no symbols at all.
	ErrEmptyAlphabet = errors.New("empty alphabet: at least one symbol is required")

	// ErrUnknownSymbol is matched by *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("symbol is missing from the code table")

	// ErrCodeTooLong is returned when a tree is too deep for its paths to
	// fit in a Code.
	ErrCodeTooLong = fmt.Errorf("code exceeds %d bits", maxBitsPerCode)

	// ErrInvalidCode is returned by NewCodeTable for empty or oversized
	// codes, and for invalid symbols.
	ErrInvalidCode = errors.New("invalid code")

	// ErrNotPrefixFree is matched by *PrefixConflictError.
	ErrNotPrefixFree = errors.New("code table is not prefix-free")
)

// UnknownSymbolError is returned by the encoder when the input contains a
// Symbol which the CodeTable does not cover.
type UnknownSymbolError struct {
	Symbol   Symbol
	Position int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %s at position %d", err.Symbol, err.Position)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

var _ error = (*UnknownSymbolError)(nil)

// PrefixConflictError is returned when the code for one Symbol is a prefix of
// (or equal to) the code for another.
type PrefixConflictError struct {
	Prefix     Symbol
	PrefixCode Code
	Other      Symbol
	OtherCode  Code
}

// Error fulfills the error interface.
func (err *PrefixConflictError) Error() string {
	return fmt.Sprintf("code %s for symbol %s is a prefix of code %s for symbol %s",
		err.PrefixCode, err.Prefix, err.OtherCode, err.Other)
}

// Is returns true for ErrNotPrefixFree.
func (err *PrefixConflictError) Is(target error) bool {
	return target == ErrNotPrefixFree
}

var _ error = (*PrefixConflictError)(nil)
