// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitbuf packs and unpacks LSB-first bit streams over caller-owned
// byte slices.
package bitbuf

import (
	"errors"
	"math/bits"
)

const wordBits = 64

var (
	// ErrBitCount reports a single request wider than the staging word.
	ErrBitCount = errors.New("bitbuf: bit count exceeds word size")
	// ErrShortBuffer reports a request past the declared buffer extent.
	ErrShortBuffer = errors.New("bitbuf: short buffer")
)

// Reverse returns the low n bits of code in reversed order.
func Reverse(code uint16, n uint8) uint16 {
	if n == 0 {
		return 0
	}
	return bits.Reverse16(code) >> (16 - n)
}

// Writer stages bits into a 64-bit word and spills whole bytes to output.
type Writer struct {
	output   []byte
	idx      int
	bits     uint64
	bitLen   uint
	bitsLeft uint64
}

// NewWriter returns a Writer over output.
func NewWriter(output []byte) *Writer {
	w := &Writer{}
	w.Reset(output)
	return w
}

// Reset rebinds w to output and clears all staged bits.
func (w *Writer) Reset(output []byte) {
	w.output = output
	w.idx = 0
	w.bits = 0
	w.bitLen = 0
	w.bitsLeft = uint64(len(output)) * 8
}

// PutBits appends the low n bits of v.
func (w *Writer) PutBits(v uint64, n uint) error {
	if n > wordBits {
		return ErrBitCount
	}
	if uint64(n) > w.bitsLeft {
		return ErrShortBuffer
	}
	w.bitsLeft -= uint64(n)
	if n > 32 {
		w.put(v&0xffff_ffff, 32)
		v >>= 32
		n -= 32
	}
	w.put(v, n)
	return nil
}

func (w *Writer) put(v uint64, n uint) {
	if w.bitLen+n > wordBits {
		w.sync()
	}
	w.bits |= (v & (1<<n - 1)) << w.bitLen
	w.bitLen += n
}

// sync spills every complete staged byte.
func (w *Writer) sync() {
	for w.bitLen >= 8 {
		w.output[w.idx] = byte(w.bits)
		w.idx++
		w.bits >>= 8
		w.bitLen -= 8
	}
}

// Flush writes out the staged bits, zero padding the last partial byte.
// Writing resumes on the next byte boundary.
func (w *Writer) Flush() {
	w.sync()
	if w.bitLen == 0 {
		return
	}
	w.output[w.idx] = byte(w.bits)
	w.idx++
	w.bitsLeft -= uint64(8 - w.bitLen)
	w.bits = 0
	w.bitLen = 0
}

// Len returns the number of bytes flushed to the output so far.
func (w *Writer) Len() int {
	return w.idx
}

// Reader reads back bits produced by Writer.
type Reader struct {
	input    []byte
	idx      int
	bits     uint64
	bitLen   uint
	bitsLeft uint64
	read     uint64
}

// NewReader returns a Reader over the first nbits bits of input.
// nbits is clamped to the extent of input.
func NewReader(input []byte, nbits uint64) *Reader {
	r := &Reader{}
	r.Reset(input, nbits)
	return r
}

// Reset rebinds r to input.
func (r *Reader) Reset(input []byte, nbits uint64) {
	if limit := uint64(len(input)) * 8; nbits > limit {
		nbits = limit
	}
	r.input = input
	r.idx = 0
	r.bits = 0
	r.bitLen = 0
	r.bitsLeft = nbits
	r.read = 0
}

func (r *Reader) fill() {
	for r.bitLen <= wordBits-8 && r.idx < len(r.input) {
		r.bits |= uint64(r.input[r.idx]) << r.bitLen
		r.idx++
		r.bitLen += 8
	}
}

// PeekBits returns the next n bits without consuming them. n must not
// exceed 56. Bits beyond the end of the input read as zero.
func (r *Reader) PeekBits(n uint) uint64 {
	if r.bitLen < n {
		r.fill()
	}
	return r.bits & (1<<n - 1)
}

// GetBits consumes and returns the next n bits.
func (r *Reader) GetBits(n uint) (uint64, error) {
	if n > wordBits {
		return 0, ErrBitCount
	}
	if uint64(n) > r.bitsLeft {
		return 0, ErrShortBuffer
	}
	if n > 32 {
		lo := r.get(32)
		hi := r.get(n - 32)
		return lo | hi<<32, nil
	}
	return r.get(n), nil
}

func (r *Reader) get(n uint) uint64 {
	if r.bitLen < n {
		r.fill()
	}
	v := r.bits & (1<<n - 1)
	r.bits >>= n
	r.bitLen -= n
	r.bitsLeft -= uint64(n)
	r.read += uint64(n)
	return v
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() uint64 {
	return r.bitsLeft
}

// Offset returns the number of bits consumed so far.
func (r *Reader) Offset() uint64 {
	return r.read
}
