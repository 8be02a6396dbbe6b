package biguint

import "github.com/shabbyrobe/go-biguint/word"

// The modular operations reduce both operands first and keep every
// intermediate below the modulus, so they never wrap. The result starts from
// the receiver's flags. A zero modulus yields zero with DividedByZero set.

func (u *BigUInt[W, S]) modular(m *BigUInt[W, S], op func(md []W) []W) *BigUInt[W, S] {
	out := u.Clone()
	if m.IsZero() {
		out.SetZero()
		out.flag |= DividedByZero
		return out
	}
	copy(out.digits, op(m.d()))
	return out
}

func (u *BigUInt[W, S]) ModularAdd(rhs, m *BigUInt[W, S]) *BigUInt[W, S] {
	return u.modular(m, func(md []W) []W {
		return modAddDigits(remDigits(u.d(), md), remDigits(rhs.d(), md), md)
	})
}

func (u *BigUInt[W, S]) ModularSub(rhs, m *BigUInt[W, S]) *BigUInt[W, S] {
	return u.modular(m, func(md []W) []W {
		return modSubDigits(remDigits(u.d(), md), remDigits(rhs.d(), md), md)
	})
}

// ModularMul multiplies by double-and-add over the bits of rhs.
func (u *BigUInt[W, S]) ModularMul(rhs, m *BigUInt[W, S]) *BigUInt[W, S] {
	return u.modular(m, func(md []W) []W {
		return modMulDigits(remDigits(u.d(), md), remDigits(rhs.d(), md), md)
	})
}

// ModularPow exponentiates by square-and-multiply over the bits of exp.
func (u *BigUInt[W, S]) ModularPow(exp, m *BigUInt[W, S]) *BigUInt[W, S] {
	return u.modular(m, func(md []W) []W {
		return modPowDigits(remDigits(u.d(), md), exp.d(), md)
	})
}

func modAddDigits[W word.Word[W]](a, b, m []W) []W {
	out := append([]W(nil), a...)
	modAddAssign(out, b, m, make([]W, len(a)))
	return out
}

// modAddAssign sets a to a+b mod m for reduced a and b, which may alias. It
// compares a with m-b rather than forming a+b, which may not fit. scratch
// must be as long as a.
func modAddAssign[W word.Word[W]](a, b, m, scratch []W) {
	copy(scratch, m)
	subDigits(scratch, b)
	if cmpDigits(a, scratch) >= 0 {
		subDigits(a, scratch)
	} else {
		addDigits(a, b)
	}
}

func modSubDigits[W word.Word[W]](a, b, m []W) []W {
	out := append([]W(nil), a...)
	if cmpDigits(a, b) >= 0 {
		subDigits(out, b)
		return out
	}
	copy(out, m)
	diff := append([]W(nil), b...)
	subDigits(diff, a)
	subDigits(out, diff)
	return out
}

func modMulDigits[W word.Word[W]](a, b, m []W) []W {
	acc := make([]W, len(a))
	base := append([]W(nil), a...)
	scratch := make([]W, len(a))

	n := bitLenDigits(b)
	for i := uint(0); i < n; i++ {
		if bitDigits(b, i) {
			modAddAssign(acc, base, m, scratch)
		}
		if i+1 < n {
			modAddAssign(base, base, m, scratch)
		}
	}
	return acc
}

func modPowDigits[W word.Word[W]](base, exp, m []W) []W {
	acc := make([]W, len(base))
	if m[0] == m[0].One() && isZeroDigits(m[1:]) {
		return acc
	}
	acc[0] = acc[0].One()

	n := bitLenDigits(exp)
	for i := uint(0); i < n; i++ {
		if bitDigits(exp, i) {
			acc = modMulDigits(acc, base, m)
		}
		if i+1 < n {
			base = modMulDigits(base, base, m)
		}
	}
	return acc
}

func bitDigits[W word.Word[W]](d []W, i uint) bool {
	w := wordBits[W]()
	return d[i/w].Rsh(i % w).IsOdd()
}
