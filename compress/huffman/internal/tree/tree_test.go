// Copyright (c) 2023, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package tree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func symbolsOf(freqs map[byte]uint64) []Symbol {
	syms := make([]Symbol, 0, len(freqs))
	for v := 0; v < MaxSymbols; v++ {
		if f := freqs[byte(v)]; f != 0 {
			syms = append(syms, Symbol{Value: byte(v), Freq: f})
		}
	}
	SortByFreq(syms)
	return syms
}

func lensByValue(syms []Symbol) map[byte]uint8 {
	m := make(map[byte]uint8, len(syms))
	for _, s := range syms {
		m[s.Value] = s.Len
	}
	return m
}

func cost(syms []Symbol) uint64 {
	total := uint64(0)
	for _, s := range syms {
		total += uint64(s.Len) * s.Freq
	}
	return total
}

func kraft(syms []Symbol, maxLen int) int {
	total := 0
	for _, s := range syms {
		total += 1 << (maxLen - int(s.Len))
	}
	return total
}

func fibonacci(n int) []Symbol {
	syms := make([]Symbol, n)
	a, b := uint64(1), uint64(1)
	for i := range syms {
		syms[i] = Symbol{Value: byte(i), Freq: a}
		a, b = b, a+b
	}
	return syms
}

func randomSymbols(rnd *rand.Rand, n int, minFreq int) []Symbol {
	syms := make([]Symbol, n)
	for i := range syms {
		syms[i] = Symbol{Value: byte(i), Freq: uint64(rnd.Intn(1000) + minFreq)}
	}
	SortByFreq(syms)
	return syms
}

var generators = map[string]func() Generator{
	"list":   func() Generator { return NewListGenerator() },
	"moffat": func() Generator { return NewMoffatGenerator() },
}

func TestGenerateSample(t *testing.T) {
	for name, newGen := range generators {
		t.Run(name, func(t *testing.T) {
			syms := symbolsOf(map[byte]uint64{'a': 8, 'b': 4, 'c': 2, 'd': 2})
			maxLen, leaves := newGen().Generate(syms)
			require.Equal(t, 3, maxLen)
			require.Equal(t, 4, leaves)
			require.Equal(t, map[byte]uint8{'a': 1, 'b': 2, 'c': 3, 'd': 3}, lensByValue(syms))
			require.Equal(t, uint64(28), cost(syms))
		})
	}
}

func TestGenerateDegenerate(t *testing.T) {
	for name, newGen := range generators {
		t.Run(name, func(t *testing.T) {
			g := newGen()
			maxLen, leaves := g.Generate(nil)
			require.Zero(t, maxLen)
			require.Zero(t, leaves)

			one := []Symbol{{Value: 'a', Freq: 1000}}
			maxLen, leaves = g.Generate(one)
			require.Equal(t, 1, maxLen)
			require.Equal(t, 1, leaves)
			require.Equal(t, uint8(1), one[0].Len)

			two := []Symbol{{Value: 'x', Freq: 1}, {Value: 'y', Freq: 99}}
			maxLen, leaves = g.Generate(two)
			require.Equal(t, 1, maxLen)
			require.Equal(t, 2, leaves)
			require.Equal(t, uint8(1), two[0].Len)
			require.Equal(t, uint8(1), two[1].Len)
		})
	}
}

func TestGeneratorsAgreeOnCost(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	list := NewListGenerator()
	moffat := NewMoffatGenerator()
	for round := 0; round < 200; round++ {
		n := rnd.Intn(MaxSymbols) + 1
		a := randomSymbols(rnd, n, 1)
		b := append([]Symbol(nil), a...)

		maxLen, leaves := list.Generate(a)
		require.Equal(t, n, leaves)
		moffat.Generate(b)
		require.Equal(t, cost(a), cost(b), "round %d n=%d", round, n)
		if maxLen < 32 && n > 1 {
			require.Equal(t, 1<<maxLen, kraft(a, maxLen))
		}
	}
}

func TestSkewedDepth(t *testing.T) {
	for name, newGen := range generators {
		t.Run(name, func(t *testing.T) {
			syms := fibonacci(20)
			maxLen, _ := newGen().Generate(syms)
			require.Equal(t, 19, maxLen)
		})
	}
}

func TestLimitLengths(t *testing.T) {
	syms := fibonacci(40)
	NewListGenerator().Generate(syms)
	require.True(t, LimitLengths(syms, 15))
	longest := uint8(0)
	for i, s := range syms {
		if s.Len > longest {
			longest = s.Len
		}
		if i > 0 {
			require.LessOrEqual(t, s.Len, syms[i-1].Len, "lengths must not grow with frequency")
		}
	}
	require.Equal(t, uint8(15), longest)
	require.Equal(t, 1<<15, kraft(syms, 15))

	short := symbolsOf(map[byte]uint64{'a': 8, 'b': 4, 'c': 2, 'd': 2})
	NewListGenerator().Generate(short)
	require.False(t, LimitLengths(short, 15))
}

func TestCanonical(t *testing.T) {
	syms := symbolsOf(map[byte]uint64{'a': 8, 'b': 4, 'c': 2, 'd': 2})
	NewListGenerator().Generate(syms)
	Canonical(syms)
	require.Equal(t, []Symbol{
		{Value: 'a', Len: 1, Code: 0b0, Freq: 8},
		{Value: 'b', Len: 2, Code: 0b10, Freq: 4},
		{Value: 'c', Len: 3, Code: 0b110, Freq: 2},
		{Value: 'd', Len: 3, Code: 0b111, Freq: 2},
	}, syms)
}

func TestCanonicalProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	g := NewListGenerator()
	for round := 0; round < 50; round++ {
		syms := randomSymbols(rnd, rnd.Intn(MaxSymbols-1)+2, 100)
		maxLen, _ := g.Generate(syms)
		require.Less(t, maxLen, 16)
		Canonical(syms)
		require.Zero(t, syms[0].Code)
		for i := 1; i < len(syms); i++ {
			prev, cur := syms[i-1], syms[i]
			switch {
			case cur.Len == prev.Len:
				require.Less(t, prev.Value, cur.Value)
				require.Equal(t, prev.Code+1, cur.Code)
			case cur.Len == prev.Len+1:
				require.Equal(t, (prev.Code+1)<<1, cur.Code)
			default:
				require.Greater(t, cur.Len, prev.Len)
			}
		}
		// the last code of the longest length is all ones
		last := syms[len(syms)-1]
		require.Equal(t, uint16(1)<<last.Len-1, last.Code)
	}
}

func TestSortsAreStable(t *testing.T) {
	syms := []Symbol{
		{Value: 'c', Freq: 2},
		{Value: 'a', Freq: 1},
		{Value: 'd', Freq: 2},
		{Value: 'b', Freq: 1},
	}
	SortByFreq(syms)
	require.Equal(t, []byte{'a', 'b', 'c', 'd'}, values(syms))

	syms[0].Len, syms[1].Len, syms[2].Len, syms[3].Len = 2, 1, 2, 1
	SortByLen(syms)
	require.Equal(t, []byte{'b', 'd', 'a', 'c'}, values(syms))

	SortByValue(syms)
	require.Equal(t, []byte{'a', 'b', 'c', 'd'}, values(syms))
}

func values(syms []Symbol) []byte {
	v := make([]byte, len(syms))
	for i, s := range syms {
		v[i] = s.Value
	}
	return v
}
