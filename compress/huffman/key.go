// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements a canonical Huffman codec over single bytes.
//
// A Builder derives a CompressionKey and a DecompressionKey from a byte
// distribution. The keys are immutable once built and may be shared by
// concurrent Compress and Decompress calls. The compressed stream carries no
// header, table or terminator: callers keep the keys, the exact bit count
// and the decompressed length themselves.
package huffman

import (
	"fmt"
	"sync"

	"github.com/intel/fasthuff/compress/huffman/internal/tree"
)

const (
	// MaxSymbols is the alphabet size. Every byte value, 255 included, is
	// an ordinary symbol.
	MaxSymbols = tree.MaxSymbols
	// LookaheadBits is the decoder window width.
	LookaheadBits = 16
	// MaxCodeLen is the longest code a key can hold.
	MaxCodeLen = LookaheadBits - 1
	// ScratchNodes is the number of tree nodes a Builder reserves: a full
	// binary tree over MaxSymbols leaves.
	ScratchNodes = tree.ScratchNodes

	tieBits = 8
	tieMask = 1<<tieBits - 1
)

// Symbol is one byte value with its frequency, code length and canonical
// code.
type Symbol = tree.Symbol

// CompressionKey maps byte values to codes. Entries are sorted by value.
type CompressionKey struct {
	count   int
	values  [MaxSymbols]uint8
	lengths [MaxSymbols]uint8
	codes   [MaxSymbols]uint16
}

// Len returns the number of symbols in the key.
func (k *CompressionKey) Len() int {
	return k.count
}

// Symbol returns the i-th entry. Freq is not kept by keys and is zero.
func (k *CompressionKey) Symbol(i int) Symbol {
	return Symbol{Value: k.values[i], Len: k.lengths[i], Code: k.codes[i]}
}

// search returns the first index whose value is not below v.
func (k *CompressionKey) search(v byte) int {
	lo, hi := 0, k.count
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if k.values[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Lookup returns the canonical code and length of v.
func (k *CompressionKey) Lookup(v byte) (code uint16, length uint8, ok bool) {
	i := k.search(v)
	if i == k.count || k.values[i] != v {
		return 0, 0, false
	}
	return k.codes[i], k.lengths[i], true
}

func (k *CompressionKey) fill(syms []Symbol) {
	k.count = len(syms)
	for i, s := range syms {
		k.values[i] = s.Value
		k.lengths[i] = s.Len
		k.codes[i] = s.Code
	}
}

// DecompressionKey maps lookahead windows to symbols.
//
// Each entry holds its code left-justified in LookaheadBits, i.e. in stream
// order, shifted above tieBits of tie-break index. Entries are sorted by this
// composite, so the entry for a window is the last one not above the window
// with every tie-break bit set.
type DecompressionKey struct {
	count   int
	values  [MaxSymbols]uint8
	lengths [MaxSymbols]uint8
	codes   [MaxSymbols]uint32
}

// Len returns the number of symbols in the key.
func (k *DecompressionKey) Len() int {
	return k.count
}

// Symbol returns the i-th entry with its canonical code.
func (k *DecompressionKey) Symbol(i int) Symbol {
	l := k.lengths[i]
	return Symbol{
		Value: k.values[i],
		Len:   l,
		Code:  uint16(k.codes[i] >> tieBits >> (LookaheadBits - l)),
	}
}

// search returns the last index whose composite is not above q, or -1.
func (k *DecompressionKey) search(q uint32) int {
	lo, hi := 0, k.count
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if k.codes[mid] <= q {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

func (k *DecompressionKey) fill(syms []Symbol) {
	k.count = len(syms)
	for i, s := range syms {
		k.values[i] = s.Value
		k.lengths[i] = s.Len
		k.codes[i] = uint32(s.Code)<<(LookaheadBits-s.Len)<<tieBits | uint32(i)
	}
	k.sort()
}

func (k *DecompressionKey) sort() {
	for i := 1; i < k.count; i++ {
		for j := i; j > 0 && k.codes[j] < k.codes[j-1]; j-- {
			k.codes[j-1], k.codes[j] = k.codes[j], k.codes[j-1]
			k.values[j-1], k.values[j] = k.values[j], k.values[j-1]
			k.lengths[j-1], k.lengths[j] = k.lengths[j], k.lengths[j-1]
		}
	}
}

// GeneratorKind selects the code length algorithm.
type GeneratorKind int

const (
	// GeneratorList merges nodes through a frequency ordered list.
	GeneratorList GeneratorKind = iota
	// GeneratorMoffat computes lengths in place in linear time.
	GeneratorMoffat
)

// Options configures a Builder.
type Options struct {
	Generator GeneratorKind
	// LimitLengths redistributes lengths above MaxCodeLen instead of
	// failing with ErrCodeTooLong.
	LimitLengths bool
}

// Builder builds key pairs. Its scratch memory is sized for MaxSymbols and
// reused between builds, so a Builder must not be used concurrently.
type Builder struct {
	opts  Options
	table SymbolTable
	gen   tree.Generator
	syms  [MaxSymbols]Symbol
}

// NewBuilder returns a Builder. A nil opts selects the defaults.
func NewBuilder(opts *Options) *Builder {
	b := &Builder{}
	if opts != nil {
		b.opts = *opts
	}
	switch b.opts.Generator {
	case GeneratorMoffat:
		b.gen = tree.NewMoffatGenerator()
	default:
		b.gen = tree.NewListGenerator()
	}
	return b
}

// Build derives both keys from the byte distribution of input.
func (b *Builder) Build(input []byte, ck *CompressionKey, dk *DecompressionKey) error {
	b.table.Reset()
	b.table.Add(input)
	return b.BuildTable(&b.table, ck, dk)
}

// BuildTable derives both keys from t. On error neither key is modified.
func (b *Builder) BuildTable(t *SymbolTable, ck *CompressionKey, dk *DecompressionKey) error {
	syms := t.Symbols(b.syms[:0])
	tree.SortByFreq(syms)

	maxLen, leaves := b.gen.Generate(syms)
	if leaves != len(syms) {
		return fmt.Errorf("%w: %d leaves for %d symbols", ErrSymbolCount, leaves, len(syms))
	}
	if maxLen > MaxCodeLen {
		if !b.opts.LimitLengths {
			return fmt.Errorf("%w: %d bits", ErrCodeTooLong, maxLen)
		}
		tree.LimitLengths(syms, MaxCodeLen)
	}

	tree.Canonical(syms)
	dk.fill(syms)
	tree.SortByValue(syms)
	ck.fill(syms)
	return nil
}

var builderPool = sync.Pool{
	New: func() any {
		return NewBuilder(nil)
	},
}

// BuildKeys derives a key pair from input with default options.
func BuildKeys(input []byte) (*CompressionKey, *DecompressionKey, error) {
	b := builderPool.Get().(*Builder)
	defer builderPool.Put(b)

	ck, dk := &CompressionKey{}, &DecompressionKey{}
	if err := b.Build(input, ck, dk); err != nil {
		return nil, nil, err
	}
	return ck, dk, nil
}
