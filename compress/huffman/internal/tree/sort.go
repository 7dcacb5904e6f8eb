// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Alphabets are at most MaxSymbols long, so stable insertion sorts are used
// throughout. They keep equal elements in input order and never allocate.

// SortByFreq sorts syms ascending by frequency.
func SortByFreq(syms []Symbol) {
	insertSort(syms, func(a, b *Symbol) bool {
		return a.Freq < b.Freq
	})
}

// SortByLen sorts syms ascending by (length, value).
func SortByLen(syms []Symbol) {
	insertSort(syms, func(a, b *Symbol) bool {
		return a.Len < b.Len || a.Len == b.Len && a.Value < b.Value
	})
}

// SortByValue sorts syms ascending by value.
func SortByValue(syms []Symbol) {
	insertSort(syms, func(a, b *Symbol) bool {
		return a.Value < b.Value
	})
}

func insertSort(arr []Symbol, less func(a, b *Symbol) bool) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && less(&arr[j], &arr[j-1]); j-- {
			arr[j-1], arr[j] = arr[j], arr[j-1]
		}
	}
}
