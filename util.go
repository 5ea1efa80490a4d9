package huffcode

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) uint {
	if x == 0 {
		x = 1
	}
	return uint(64 - mathbits.LeadingZeros64(x))
}

// fixedWidth returns the number of bits a fixed-width code needs to give each
// of numSymbols symbols a distinct code.  At least one bit is always needed.
func fixedWidth(numSymbols int) uint {
	if numSymbols <= 2 {
		return 1
	}
	return log2uint64(uint64(numSymbols - 1))
}
