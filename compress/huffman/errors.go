// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"strconv"

	"github.com/intel/fasthuff/compress/huffman/internal/bitbuf"
)

var (
	// ErrCodeTooLong is returned when the input distribution needs codes of
	// LookaheadBits or more.
	ErrCodeTooLong = errors.New("huffman: code length exceeds lookahead window")
	// ErrSymbolCount is returned when the tree does not reach every symbol.
	ErrSymbolCount = errors.New("huffman: tree leaves do not match symbol count")
	// ErrValueMismatch is returned when an input byte has no entry in the key.
	ErrValueMismatch = errors.New("huffman: value not in key")
	// ErrShortInput is returned when the bit count exceeds the input buffer.
	ErrShortInput = errors.New("huffman: bit count exceeds input")
)

var (
	// ErrShortBuffer is returned when the output cannot hold the stream.
	ErrShortBuffer = bitbuf.ErrShortBuffer
)

// A CorruptInputError reports the bit offset at which no code in the key
// matches the stream.
type CorruptInputError int64

func (e CorruptInputError) Error() string {
	return "huffman: corrupt input at bit offset " + strconv.FormatInt(int64(e), 10)
}
