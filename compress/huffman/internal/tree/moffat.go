// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// MoffatGenerator implements In-Place Calculation of Minimum-Redundancy Codes.
// Check http://hjemmesider.diku.dk/~jyrki/Paper/WADS95.pdf .
type MoffatGenerator struct {
	w [MaxSymbols]uint64
}

// NewMoffatGenerator creates a new MoffatGenerator instance
func NewMoffatGenerator() *MoffatGenerator {
	return &MoffatGenerator{}
}

// Generate implements Generator. Every symbol is a leaf by construction.
func (m *MoffatGenerator) Generate(syms []Symbol) (maxLen int, leaves int) {
	n := len(syms)
	// the in-place passes want weights in descending order
	w := m.w[:n]
	for i := range syms {
		w[n-1-i] = syms[i].Freq
	}
	maxLen = int(codeLens(w))
	for i := range syms {
		syms[i].Len = uint8(w[n-1-i])
	}
	return maxLen, n
}

func codeLens(w []uint64) uint64 {
	// phase 1
	n := len(w)
	if n == 0 {
		return 0
	}
	if n == 1 {
		w[0] = 1
		return 1
	}
	leaf := n - 1
	root := n - 1
	for next := n - 1; next >= 1; next-- {
		// find first child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] = w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] = w[leaf]
			leaf--
		}

		// find second child
		if leaf < 0 || (root > next && w[root] < w[leaf]) {
			// use internal code
			w[next] += w[root]
			w[root] = uint64(next)
			root--
		} else {
			// use leaf node
			w[next] += w[leaf]
			leaf--
		}
	}
	// phase 2
	w[1] = 0
	for next := 2; next <= n-1; next++ {
		w[next] = w[w[next]] + 1
	}
	// phase 3
	avail := 1
	used := 0
	depth := uint64(0)
	root = 1
	next := 0
	for avail > 0 {
		// count internal nodes used at depth depth
		for ; root < n && w[root] == depth; root++ {
			used++
		}
		// assign as leaves any nodes that are not internal
		for ; avail > used; avail-- {
			w[next] = depth
			next++
		}
		avail = 2 * used
		depth++
		used = 0
	}
	return w[n-1]
}
