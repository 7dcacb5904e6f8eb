// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"

	"github.com/intel/fasthuff/compress/huffman/internal/bitbuf"
)

// CompressedSizeBits returns the exact stream length Compress produces for
// input. Bytes missing from key contribute nothing.
func CompressedSizeBits(key *CompressionKey, input []byte) uint64 {
	var t SymbolTable
	t.Add(input)
	total := uint64(0)
	for i := 0; i < key.count; i++ {
		total += uint64(key.lengths[i]) * t.counts[key.values[i]]
	}
	return total
}

// CompressedSize returns the number of output bytes Compress needs for
// input.
func CompressedSize(key *CompressionKey, input []byte) int {
	return int((CompressedSizeBits(key, input) + 7) / 8)
}

// Compress encodes input into output and returns the stream length in bits.
// Codes are written LSB first; the last byte is zero padded.
func Compress(key *CompressionKey, input []byte, output []byte) (nbits uint64, err error) {
	var w bitbuf.Writer
	w.Reset(output)
	for i, c := range input {
		j := key.search(c)
		if j == key.count || key.values[j] != c {
			return 0, fmt.Errorf("%w: byte %#02x at offset %d", ErrValueMismatch, c, i)
		}
		length := key.lengths[j]
		if err = w.PutBits(uint64(bitbuf.Reverse(key.codes[j], length)), uint(length)); err != nil {
			return 0, fmt.Errorf("huffman: encoding offset %d: %w", i, err)
		}
		nbits += uint64(length)
	}
	w.Flush()
	return nbits, nil
}
