package word

import (
	"fmt"
	"math/big"
	"math/bits"
)

const intSize = 32 << (^uint(0) >> 63)

// U128 is the 128-bit Word. Go has no native 128-bit integer, so it is a
// pair of uint64s.
type U128 struct {
	hi, lo uint64
}

var MaxU128 = U128{hi: maxUint64, lo: maxUint64}

const maxUint64 = 1<<64 - 1

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		var w [4]uint64
		if len(words) > 4 {
			return MaxU128, false
		}
		for i, x := range words {
			w[i] = uint64(x)
		}
		return U128{hi: w[3]<<32 | w[2], lo: w[1]<<32 | w[0]}, true

	default:
		panic("word: unsupported bit size")
	}
}

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return fmt.Sprint(u.lo)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		b.SetBits([]big.Word{big.Word(u.lo), big.Word(u.hi)})
	case 32:
		b.SetBits([]big.Word{
			big.Word(u.lo & 0xFFFFFFFF), big.Word(u.lo >> 32),
			big.Word(u.hi & 0xFFFFFFFF), big.Word(u.hi >> 32),
		})
	default:
		panic("word: unsupported bit size")
	}
}

func (u U128) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Equal(n U128) bool { return u == n }

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

func (u U128) Mul(n U128) (dest U128) {
	hi, lo := bits.Mul64(u.lo, n.lo)
	dest.lo = lo
	dest.hi = hi + u.hi*n.lo + u.lo*n.hi
	return dest
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.lo == 0 && by.hi == 0 {
		panic(errDivideByZero)
	}

	if u.hi|by.hi == 0 {
		q.lo = u.lo / by.lo
		r.lo = u.lo % by.lo
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == 127 {
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if (byLeading0 + byTrailing0) == 127 {
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.lo = 1
		return q, r
	}

	return quorem128by128(u, by)
}

func (u U128) Quo(by U128) U128 {
	q, _ := u.QuoRem(by)
	return q
}

func (u U128) Rem(by U128) U128 {
	_, r := u.QuoRem(by)
	return r
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func quorem128by128(m, v U128) (q, r U128) {
	if v.hi == 0 {
		if m.hi < v.lo {
			q.lo, r.lo = bits.Div64(m.hi, m.lo, v.lo)
			return q, r
		}
		q.hi = m.hi / v.lo
		q.lo, r.lo = bits.Div64(m.hi%v.lo, m.lo, v.lo)
		return q, r
	}

	// Normalise so the divisor's top bit is set, estimate the quotient from
	// the top word, then correct it by at most one.
	sh := uint(bits.LeadingZeros64(v.hi))
	v1 := v.Lsh(sh)
	u1 := m.Rsh(1)

	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - sh
	if tq != 0 {
		tq--
	}
	q = U128{lo: tq}
	r = m.Sub(v.Mul(q))

	if r.Cmp(v) >= 0 {
		q = q.Inc()
		r = r.Sub(v)
	}
	return q, r
}

// mul128to256 returns the full product of n and by.
func mul128to256(n, by U128) (hi, lo U128) {
	hi.hi, hi.lo = bits.Mul64(n.hi, by.hi)
	lo.hi, lo.lo = bits.Mul64(n.lo, by.lo)

	for _, t := range [...][2]uint64{{n.hi, by.lo}, {n.lo, by.hi}} {
		th, tl := bits.Mul64(t[0], t[1])

		var c uint64
		lo.hi, c = bits.Add64(lo.hi, tl, 0)
		hi.lo, c = bits.Add64(hi.lo, th, c)
		hi.hi += c
	}
	return hi, lo
}

// The remainder of this file implements Word[U128].

func (U128) Bits() uint { return 128 }

func (U128) Zero() U128 { return U128{} }
func (U128) One() U128  { return U128{lo: 1} }
func (U128) Max() U128  { return MaxU128 }
func (U128) Min() U128  { return U128{} }

func (u U128) IsZero() bool { return u.hi|u.lo == 0 }

func (u U128) WrappingAdd(n U128) U128 { return u.Add(n) }
func (u U128) WrappingSub(n U128) U128 { return u.Sub(n) }
func (u U128) WrappingMul(n U128) U128 { return u.Mul(n) }
func (u U128) WrappingDiv(n U128) U128 { return u.Quo(n) }
func (u U128) WrappingRem(n U128) U128 { return u.Rem(n) }

func (u U128) OverflowingAdd(n U128) (U128, bool) {
	v := u.Add(n)
	return v, v.LessThan(u)
}

func (u U128) OverflowingSub(n U128) (U128, bool) {
	v := u.Sub(n)
	return v, v.GreaterThan(u)
}

func (u U128) OverflowingMul(n U128) (U128, bool) {
	hi, lo := mul128to256(u, n)
	return lo, !hi.IsZero()
}

func (u U128) OverflowingDiv(n U128) (U128, bool) { return u.Quo(n), false }
func (u U128) OverflowingRem(n U128) (U128, bool) { return u.Rem(n), false }

func (u U128) CheckedAdd(n U128) (U128, bool) {
	v, over := u.OverflowingAdd(n)
	return v, !over
}

func (u U128) CheckedSub(n U128) (U128, bool) {
	v, under := u.OverflowingSub(n)
	return v, !under
}

func (u U128) CheckedMul(n U128) (U128, bool) {
	v, over := u.OverflowingMul(n)
	return v, !over
}

func (u U128) CheckedDiv(n U128) (U128, bool) {
	if n.IsZero() {
		return U128{}, false
	}
	return u.Quo(n), true
}

func (u U128) CheckedRem(n U128) (U128, bool) {
	if n.IsZero() {
		return U128{}, false
	}
	return u.Rem(n), true
}

func (u U128) WideningMul(n U128) (lo, hi U128) {
	hi, lo = mul128to256(u, n)
	return lo, hi
}

func (u U128) CarryingMul(n, carry U128) (lo, hi U128) {
	hi, lo = mul128to256(u, n)
	s := lo.Add(carry)
	if s.LessThan(lo) {
		hi = hi.Inc()
	}
	return s, hi
}

func (u U128) WideningQuoRem(lo, n U128) (q, r U128) {
	if n.IsZero() {
		panic(errDivideByZero)
	}
	if u.IsZero() {
		return lo.QuoRem(n)
	}
	qw, rw := U256FromRaw(u, lo).QuoRem(U256From128(n))
	return qw.AsU128(), rw.AsU128()
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) And(n U128) U128 { return U128{hi: u.hi & n.hi, lo: u.lo & n.lo} }
func (u U128) Or(n U128) U128  { return U128{hi: u.hi | n.hi, lo: u.lo | n.lo} }
func (u U128) Xor(n U128) U128 { return U128{hi: u.hi ^ n.hi, lo: u.lo ^ n.lo} }
func (u U128) Not() U128       { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) OnesCount() uint {
	return uint(bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo))
}

func (u U128) RotateLeft(k int) U128 {
	k = ((k % 128) + 128) % 128
	if k == 0 {
		return u
	}
	return u.Lsh(uint(k)).Or(u.Rsh(uint(128 - k)))
}

func (u U128) RotateRight(k int) U128 { return u.RotateLeft(-k) }

func (u U128) IsMSBSet() bool { return u.hi>>63 != 0 }
func (u U128) IsOdd() bool    { return u.lo&1 != 0 }

func (u U128) ModularAdd(n, m U128) U128 { return modularAdd(u, n, m) }
func (u U128) ModularSub(n, m U128) U128 { return modularSub(u, n, m) }
func (u U128) ModularPow(e, m U128) U128 { return modularPow(u, e, m) }

// ModularMul reduces the full 256-bit product, so it never loses bits.
func (u U128) ModularMul(n, m U128) U128 {
	if m.IsZero() {
		panic(errModuloZero)
	}
	a, b := u.Rem(m), n.Rem(m)
	if a.hi|b.hi == 0 && m.hi == 0 {
		hi, lo := bits.Mul64(a.lo, b.lo)
		if hi < m.lo {
			_, r := bits.Div64(hi, lo, m.lo)
			return U128{lo: r}
		}
	}
	hi, lo := mul128to256(a, b)
	return U256FromRaw(hi, lo).Rem(U256From128(m)).AsU128()
}

func (u U128) ISqrt() U128         { return iroot(u, 2) }
func (u U128) IRoot(exp uint) U128 { return iroot(u, exp) }

func (u U128) IsPrimeMillerRabin(repetition int) bool { return isPrimeMillerRabin(u, repetition) }
func (u U128) TestMillerRabin(witness U128) bool      { return testMillerRabin(u, witness) }

func (u U128) Uint64() uint64 { return u.lo }
func (u U128) AsU128() U128   { return u }

func (U128) FromUint64(v uint64) U128 { return U128{lo: v} }
func (U128) FromU128(v U128) U128     { return v }
