// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// SymbolTable counts byte frequencies. Counts accumulate across Add calls,
// so one table can describe several buffers.
type SymbolTable struct {
	counts [MaxSymbols]uint64
}

// Reset clears all counts.
func (t *SymbolTable) Reset() {
	for i := range t.counts {
		t.counts[i] = 0
	}
}

// Add counts every byte of input.
func (t *SymbolTable) Add(input []byte) {
	for _, c := range input {
		t.counts[c]++
	}
}

// Count returns the frequency of v.
func (t *SymbolTable) Count(v byte) uint64 {
	return t.counts[v]
}

// Len returns the number of distinct values seen.
func (t *SymbolTable) Len() int {
	n := 0
	for _, c := range t.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

// Symbols appends one Symbol per value seen to dst, ascending by value.
func (t *SymbolTable) Symbols(dst []Symbol) []Symbol {
	for v, c := range t.counts {
		if c != 0 {
			dst = append(dst, Symbol{Value: byte(v), Freq: c})
		}
	}
	return dst
}
