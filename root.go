package biguint

import "github.com/shabbyrobe/go-biguint/word"

// ISqrt returns the floor of the square root of u.
func (u *BigUInt[W, S]) ISqrt() *BigUInt[W, S] { return u.IRoot(2) }

// IRoot returns the largest r such that r^exp <= u. The root is built one
// bit at a time from the highest bit it can have; a probe whose power does
// not fit is too large by definition.
//
// IRoot(0) has no answer: it returns Max with Infinity set. IRoot(1) and the
// root of zero return u unchanged.
func (u *BigUInt[W, S]) IRoot(exp uint) *BigUInt[W, S] {
	out := u.Clone()
	if exp == 0 {
		out.SetMax()
		out.flag |= Infinity
		return out
	}
	if exp == 1 || u.IsZero() {
		return out
	}

	v := u.d()
	rootBits := (bitLenDigits(v) + exp - 1) / exp

	root := out.digits
	setZeroDigits(root)

	w := wordBits[W]()
	for b := int(rootBits) - 1; b >= 0; b-- {
		i, bit := uint(b)/w, uint(b)%w
		prev := root[i]
		root[i] = prev.Or(prev.One().Lsh(bit))
		if p, ok := checkedPowDigits(root, exp); !ok || cmpDigits(p, v) > 0 {
			root[i] = prev
		}
	}
	return out
}

// checkedPowDigits raises a to exp by square-and-multiply. ok is false if
// the result does not fit in len(a) digits.
func checkedPowDigits[W word.Word[W]](a []W, exp uint) (res []W, ok bool) {
	res = make([]W, len(a))
	res[0] = res[0].One()
	base := append([]W(nil), a...)

	for exp > 0 {
		var truncated bool
		if exp&1 == 1 {
			if res, truncated = mulDigits(res, base); truncated {
				return res, false
			}
		}
		exp >>= 1
		if exp > 0 {
			// Every remaining set bit multiplies this square in, so losing
			// bits here means the final result cannot fit either.
			if base, truncated = mulDigits(base, base); truncated {
				return res, false
			}
		}
	}
	return res, true
}
