package word

import (
	"math/big"
	"math/bits"
)

// U256 implements just enough of a 256-bit integer to reduce a full U128
// product modulo a U128.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, lo U128) U256 {
	return U256{hi: hi.hi, hm: hi.lo, lm: lo.hi, lo: lo.lo}
}

func U256From128(in U128) U256 {
	return U256{lm: in.hi, lo: in.lo}
}

func (u U256) IsZero() bool { return u.hi|u.hm|u.lm|u.lo == 0 }

func (u U256) AsBigInt() *big.Int {
	b := U128{hi: u.hi, lo: u.hm}.AsBigInt()
	b.Lsh(b, 128)
	return b.Or(b, U128{hi: u.lm, lo: u.lo}.AsBigInt())
}

func (u U256) String() string { return u.AsBigInt().String() }

func (u U256) AsU128() U128 { return U128{hi: u.lm, lo: u.lo} }

func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) Lsh(n uint) U256 {
	switch {
	case n == 0:
		return u
	case n >= 256:
		return U256{}
	case n >= 128:
		hi := U128{hi: u.lm, lo: u.lo}.Lsh(n - 128)
		return U256{hi: hi.hi, hm: hi.lo}
	default:
		hi := U128{hi: u.hi, lo: u.hm}.Lsh(n).Or(U128{hi: u.lm, lo: u.lo}.Rsh(128 - n))
		lo := U128{hi: u.lm, lo: u.lo}.Lsh(n)
		return U256FromRaw(hi, lo)
	}
}

func (u U256) Rsh(n uint) U256 {
	switch {
	case n == 0:
		return u
	case n >= 256:
		return U256{}
	case n >= 128:
		lo := U128{hi: u.hi, lo: u.hm}.Rsh(n - 128)
		return U256{lm: lo.hi, lo: lo.lo}
	default:
		lo := U128{hi: u.lm, lo: u.lo}.Rsh(n).Or(U128{hi: u.hi, lo: u.hm}.Lsh(128 - n))
		hi := U128{hi: u.hi, lo: u.hm}.Rsh(n)
		return U256FromRaw(hi, lo)
	}
}

// QuoRem returns the quotient and remainder of u/by. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U256) QuoRem(by U256) (q, r U256) {
	if by.IsZero() {
		panic(errDivideByZero)
	}
	if u.Cmp(by) < 0 {
		return q, u
	}
	return quorem256bin(u, by, u.LeadingZeros(), by.LeadingZeros())
}

func (u U256) Rem(by U256) U256 {
	_, r := u.QuoRem(by)
	return r
}

func quorem256bin(u, by U256, uLeading0, byLeading0 uint) (q, r U256) {
	shift := int(byLeading0 - uLeading0)
	by = by.Lsh(uint(shift))

	for {
		q = q.Lsh(1)

		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}

		by = by.Rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, u
}
