// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package tree derives Huffman code lengths and canonical codes from symbol
// frequencies.
package tree

const (
	// MaxSymbols is the alphabet size: every byte value.
	MaxSymbols = 256
	// ScratchNodes is the node arena size for a full alphabet.
	ScratchNodes = 2*MaxSymbols - 1

	noValue = -1
)

// Symbol is one byte value together with its frequency and, once generated,
// its code length and canonical code.
type Symbol struct {
	Value uint8
	Len   uint8
	Code  uint16
	Freq  uint64
}

// Generator generates code lengths from frequencies.
// A generator should be reused due to its scratch memory.
type Generator interface {
	// Generate writes code lengths into syms, which must be sorted ascending
	// by frequency. It returns the longest length and the number of leaves
	// reached from the root.
	Generate(syms []Symbol) (maxLen int, leaves int)
}

type node struct {
	freq uint64
	a, b int16
	sym  int16
}

// ListGenerator builds an explicit tree by repeatedly merging the two
// lightest nodes of a frequency ordered work list. Merged nodes are
// re-inserted after every node of equal frequency.
type ListGenerator struct {
	arena [ScratchNodes]node
	work  [MaxSymbols]int16
}

// NewListGenerator creates a new ListGenerator instance
func NewListGenerator() *ListGenerator {
	return &ListGenerator{}
}

// Generate implements Generator.
func (g *ListGenerator) Generate(syms []Symbol) (maxLen int, leaves int) {
	n := len(syms)
	if n == 0 {
		return 0, 0
	}
	for i := range syms {
		g.arena[i] = node{freq: syms[i].Freq, a: noValue, b: noValue, sym: int16(i)}
		g.work[i] = int16(i)
		syms[i].Len = 0
	}
	if n == 1 {
		syms[0].Len = 1
		return 1, 1
	}

	next := n
	head := 0
	for n-head > 1 {
		a, b := g.work[head], g.work[head+1]
		k := int16(next)
		g.arena[next] = node{
			freq: g.arena[a].freq + g.arena[b].freq,
			a:    a,
			b:    b,
			sym:  noValue,
		}
		next++

		// Drop a and b, then slide the lighter tail left to open a slot.
		head += 2
		freq := g.arena[k].freq
		pos := head
		for pos < n && g.arena[g.work[pos]].freq <= freq {
			pos++
		}
		copy(g.work[head-1:pos-1], g.work[head:pos])
		g.work[pos-1] = k
		head--
	}

	maxLen, leaves = g.walk(syms, g.work[head], 0)
	return maxLen, leaves
}

func (g *ListGenerator) walk(syms []Symbol, idx int16, depth int) (maxLen int, leaves int) {
	nd := &g.arena[idx]
	if nd.sym != noValue {
		syms[nd.sym].Len = uint8(depth)
		return depth, 1
	}
	la, na := g.walk(syms, nd.a, depth+1)
	lb, nb := g.walk(syms, nd.b, depth+1)
	if lb > la {
		la = lb
	}
	return la, na + nb
}
