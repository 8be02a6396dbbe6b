package word

import "github.com/shabbyrobe/go-biguint/internal/primality"

// The helpers in this file only use the Word contract, so every width shares
// one implementation of the modular and number-theoretic operations.

func modularAdd[T Word[T]](a, b, m T) T {
	if m.IsZero() {
		panic(errModuloZero)
	}
	a, b = a.WrappingRem(m), b.WrappingRem(m)

	// a + b >= m without computing a + b, which may not fit:
	diff := m.WrappingSub(b)
	if a.Cmp(diff) >= 0 {
		return a.WrappingSub(diff)
	}
	return a.WrappingAdd(b)
}

func modularSub[T Word[T]](a, b, m T) T {
	if m.IsZero() {
		panic(errModuloZero)
	}
	a, b = a.WrappingRem(m), b.WrappingRem(m)
	if a.Cmp(b) >= 0 {
		return a.WrappingSub(b)
	}
	return m.WrappingSub(b.WrappingSub(a))
}

func modularPow[T Word[T]](base, exp, m T) T {
	if m.IsZero() {
		panic(errModuloZero)
	}
	one := m.One()
	if m == one {
		return m.Zero()
	}

	result := one
	base = base.WrappingRem(m)
	for !exp.IsZero() {
		if exp.IsOdd() {
			result = result.ModularMul(base, m)
		}
		exp = exp.Rsh(1)
		if !exp.IsZero() {
			base = base.ModularMul(base, m)
		}
	}
	return result
}

// checkedPow raises v to exp by square-and-multiply, reporting false as
// soon as the result no longer fits in the word.
func checkedPow[T Word[T]](v T, exp uint) (T, bool) {
	result, base := v.One(), v
	for exp > 0 {
		var ok bool
		if exp&1 == 1 {
			if result, ok = result.CheckedMul(base); !ok {
				return result, false
			}
		}
		exp >>= 1
		if exp > 0 {
			// A later set bit multiplies this square in.
			if base, ok = base.CheckedMul(base); !ok {
				return result, false
			}
		}
	}
	return result, true
}

// iroot finds the largest r such that r^exp <= v, building r one bit at a
// time from the most significant candidate bit down. A probe whose power
// overflows is treated as too high.
func iroot[T Word[T]](v T, exp uint) T {
	if exp == 0 {
		return v.Max()
	}
	if exp == 1 || v.IsZero() {
		return v
	}

	bitLen := v.Bits() - v.LeadingZeros()
	rootBits := (bitLen + exp - 1) / exp

	one := v.One()
	root := v.Zero()
	for b := int(rootBits) - 1; b >= 0; b-- {
		cand := root.Or(one.Lsh(uint(b)))
		if p, ok := checkedPow(cand, exp); ok && p.Cmp(v) <= 0 {
			root = cand
		}
	}
	return root
}

func isPrimeMillerRabin[T Word[T]](n T, repetition int) bool {
	fits64 := n.Bits() <= 64 || n.LeadingZeros() >= n.Bits()-64

	if fits64 {
		v := n.Uint64()
		switch {
		case v == 2 || v == 3:
			return true
		case v < 2 || v%2 == 0:
			return false
		case v < primality.TrialDivisionLimit:
			return primality.IsPrimeTrial(v)
		}
	} else if !n.IsOdd() {
		return false
	}

	fits32 := fits64 && n.Uint64() <= 0xFFFFFFFF
	for _, w := range primality.Witnesses(fits32, fits64, repetition) {
		if !testMillerRabin(n, n.FromUint64(w)) {
			return false
		}
	}
	return true
}

// testMillerRabin runs a single Miller-Rabin round for witness a. Writing
// n-1 = d * 2^s, a passes if a^d == 1 or a^(d*2^r) == n-1 for some r < s.
func testMillerRabin[T Word[T]](n, a T) bool {
	one := n.One()
	two := one.WrappingAdd(one)
	if n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two.WrappingAdd(one)) <= 0 {
		return true
	}
	if !n.IsOdd() {
		return false
	}

	a = a.WrappingRem(n)
	if a.IsZero() {
		// a is a multiple of n and says nothing about it.
		return true
	}

	nm1 := n.WrappingSub(one)
	s := nm1.TrailingZeros()
	d := nm1.Rsh(s)

	x := a.ModularPow(d, n)
	if x == one || x == nm1 {
		return true
	}
	for r := uint(1); r < s; r++ {
		x = x.ModularMul(x, n)
		if x == nm1 {
			return true
		}
		if x == one {
			return false
		}
	}
	return false
}
