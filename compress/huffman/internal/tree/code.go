// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

// Canonical sorts syms by (length, value) and assigns canonical codes:
// codes of one length are consecutive and a longer length appends zero bits
// to the successor of the previous code. Lengths must already be set.
func Canonical(syms []Symbol) {
	SortByLen(syms)
	code := uint16(0)
	for i := range syms {
		if i > 0 {
			code = (code + 1) << (syms[i].Len - syms[i-1].Len)
		}
		syms[i].Code = code
	}
}
