package huffcode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// EncodedOutput is an ordered sequence of bits.  It is stored bit-packed:
// the first bit is the most significant bit of the first byte, and the unused
// low-order bits of the final byte are zero.
type EncodedOutput struct {
	data []byte
	size uint64
}

// Len returns the number of bits.
func (eo EncodedOutput) Len() uint64 {
	return eo.size
}

// Bytes returns a copy of the packed bits.  The slice holds (Len()+7)/8
// bytes.
func (eo EncodedOutput) Bytes() []byte {
	out := make([]byte, len(eo.data))
	copy(out, eo.data)
	return out
}

// Bit returns the bit at the given index, where index 0 is the first bit.
func (eo EncodedOutput) Bit(index uint64) uint {
	assert.Assertf(index < eo.size, "bit index %d out of range [0, %d)", index, eo.size)
	return uint(eo.data[index/8]>>(7-index%8)) & 1
}

// Equal returns true iff both outputs hold the same sequence of bits.
func (eo EncodedOutput) Equal(other EncodedOutput) bool {
	return eo.size == other.size && bytes.Equal(eo.data, other.data)
}

// String returns the bits as a string of '0' and '1' characters.
func (eo EncodedOutput) String() string {
	var buf strings.Builder
	buf.Grow(int(eo.size))
	for index := uint64(0); index < eo.size; index++ {
		buf.WriteByte(byte('0' + eo.Bit(index)))
	}
	return buf.String()
}

var _ fmt.Stringer = EncodedOutput{}

// outputWriter accumulates bits into a single growable buffer.
type outputWriter struct {
	buf  bytes.Buffer
	bw   *bitio.Writer
	size uint64
}

func newOutputWriter(sizeHint uint64) *outputWriter {
	ow := new(outputWriter)
	ow.buf.Grow(int((sizeHint + 7) / 8))
	ow.bw = bitio.NewWriter(&ow.buf)
	return ow
}

func (ow *outputWriter) WriteCode(hc Code) error {
	if err := ow.bw.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	ow.size += uint64(hc.Size)
	return nil
}

// WriteOutput appends every bit of eo.  The bits are copied in 64-bit chunks,
// so eo need not start on a byte boundary of the output.
func (ow *outputWriter) WriteOutput(eo EncodedOutput) error {
	br := bitio.NewReader(bytes.NewReader(eo.data))
	remaining := eo.size
	for remaining != 0 {
		n := uint8(maxBitsPerCode)
		if remaining < maxBitsPerCode {
			n = uint8(remaining)
		}
		u, err := br.ReadBits(n)
		if err != nil {
			return err
		}
		if err := ow.bw.WriteBits(u, n); err != nil {
			return err
		}
		remaining -= uint64(n)
	}
	ow.size += eo.size
	return nil
}

func (ow *outputWriter) Finish() (EncodedOutput, error) {
	if err := ow.bw.Close(); err != nil {
		return EncodedOutput{}, err
	}
	data := ow.buf.Bytes()
	assert.Assertf(uint64(len(data)) == (ow.size+7)/8, "packed %d bytes for %d bits", len(data), ow.size)
	return EncodedOutput{data: data, size: ow.size}, nil
}
