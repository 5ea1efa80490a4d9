package huffcode

import (
	"fmt"
	"strconv"
)

const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size low-order bits, so
	// appending a bit is a left shift.  Bits above Size are always zero.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.  Bits above size
// are discarded.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits & lowMask(size)}
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("%w: %q has %d bits, max %d", ErrInvalidCode, str, len(str), maxBitsPerCode)
	}
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("%w: %q contains %q at index %d", ErrInvalidCode, str, str[index], index)
		}
	}
	return hc, nil
}

// Append returns the Code formed by adding one more bit (0 or 1) to the end
// of this Code.  The caller must ensure that Size < 64.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the bit at the given index, where index 0 is the first bit.
func (hc Code) Bit(index byte) uint {
	return uint(hc.Bits>>(hc.Size-1-index)) & 1
}

// HasPrefix returns true iff prefix is a prefix of, or equal to, this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}

func lowMask(size byte) uint64 {
	return (uint64(1) << size) - 1
}
