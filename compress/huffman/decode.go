// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"github.com/intel/fasthuff/compress/huffman/internal/bitbuf"
)

// Decompress decodes the first nbits bits of input into output and returns
// the number of bytes written. It stops when either the bits or the output
// space run out, so callers size output to the expected length.
func Decompress(key *DecompressionKey, input []byte, nbits uint64, output []byte) (int, error) {
	if nbits > uint64(len(input))*8 {
		return 0, ErrShortInput
	}
	var r bitbuf.Reader
	r.Reset(input, nbits)

	n := 0
	for r.Remaining() > 0 && n < len(output) {
		window := uint32(bitbuf.Reverse(uint16(r.PeekBits(LookaheadBits)), LookaheadBits))
		i := key.search(window<<tieBits | tieMask)
		if i < 0 {
			return n, CorruptInputError(r.Offset())
		}
		length := key.lengths[i]
		start := key.codes[i] >> tieBits
		// the window must fall inside the span the code covers
		if window-start >= 1<<(LookaheadBits-length) || uint64(length) > r.Remaining() {
			return n, CorruptInputError(r.Offset())
		}
		output[n] = key.values[i]
		n++
		if _, err := r.GetBits(uint(length)); err != nil {
			return n, err
		}
	}
	return n, nil
}
