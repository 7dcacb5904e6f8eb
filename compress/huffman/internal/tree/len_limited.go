// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// LimitLengths caps the code lengths of syms at maxLen and redistributes
// them so the code stays complete. syms must be sorted ascending by
// frequency and must hold at most 1<<maxLen symbols. It reports whether any
// length changed.
func LimitLengths(syms []Symbol, maxLen int) bool {
	var lenCounts [MaxSymbols]int
	longest := 0
	for _, s := range syms {
		lenCounts[s.Len]++
		if int(s.Len) > longest {
			longest = int(s.Len)
		}
	}
	if longest <= maxLen {
		return false
	}
	enforceMaxLen(lenCounts[:longest+1], maxLen)

	// shortest lengths go to the most frequent symbols
	idx := len(syms) - 1
	for length := 1; length <= maxLen; length++ {
		for j := 0; j < lenCounts[length]; j++ {
			syms[idx].Len = uint8(length)
			idx--
		}
	}
	return true
}

func enforceMaxLen(lenCounts []int, maxLen int) {
	// move all oversize length to the maxLen
	for i := maxLen + 1; i < len(lenCounts); i++ {
		lenCounts[maxLen] += lenCounts[i]
		lenCounts[i] = 0
	}

	// Kraft-McMillan inequality
	// https://en.wikipedia.org/wiki/Kraft%E2%80%93McMillan_inequality
	// -> sum(2^-length[...]) == 1
	// -> sum(lengthAnum * 2 ^ (maxLength - lengthA),... ) + maxLengthNum == 2 ^ maxLength
	total := 0
	for i := 1; i <= maxLen; i++ {
		total += lenCounts[i] << (maxLen - i)
	}
	for total != 1<<maxLen {
		// split the deepest shorter leaf and give one slot to a maxLen leaf
		lenCounts[maxLen]--
		for i := maxLen - 1; i > 0; i-- {
			if lenCounts[i] != 0 {
				lenCounts[i]--
				lenCounts[i+1] += 2
				break
			}
		}
		total--
	}
}
