package biguint

import (
	"github.com/shabbyrobe/go-biguint/internal/primality"
	"github.com/shabbyrobe/go-biguint/word"
)

// IsPrimeMillerRabin reports whether u is prime. Values below 10000 are
// decided by trial division. Values that fit in 32 or 64 bits are tested
// against a witness set that is deterministic for that range. Anything
// larger is tested against the 64-bit set followed by 3, 4, 5, ... until
// repetition witnesses have been used, so it is probabilistic: a composite
// may pass, a prime never fails.
func (u *BigUInt[W, S]) IsPrimeMillerRabin(repetition int) bool {
	bitLen := u.BitLen()
	if bitLen <= 64 {
		v := u.AsUint64()
		switch {
		case v == 2 || v == 3:
			return true
		case v < 2 || v%2 == 0:
			return false
		case v < primality.TrialDivisionLimit:
			return primality.IsPrimeTrial(v)
		}
	} else if u.IsEven() {
		return false
	}

	witness := Zero[W, S]()
	for _, w := range primality.Witnesses(bitLen <= 32, bitLen <= 64, repetition) {
		witness.SetZero()
		placeBits(witness, word.U128From64(w))
		if !u.TestMillerRabin(witness) {
			return false
		}
	}
	return true
}

// TestMillerRabin runs a single Miller-Rabin round with witness a. It
// returns false only if a proves u composite. Writing u-1 as d * 2^s, a
// passes if a^d == 1 or a^(d*2^r) == u-1 for some r < s, all mod u.
func (u *BigUInt[W, S]) TestMillerRabin(a *BigUInt[W, S]) bool {
	var two, three W
	two = two.FromUint64(2)
	three = three.FromUint64(3)

	switch {
	case u.CmpWord(two) < 0:
		return false
	case u.CmpWord(three) <= 0:
		return true
	case u.IsEven():
		return false
	}

	n := u.d()
	x := remDigits(a.d(), n)
	if isZeroDigits(x) {
		// a is a multiple of u and says nothing about it.
		return true
	}

	one := One[W, S]().digits
	nm1 := append([]W(nil), n...)
	subDigits(nm1, one)
	s := trailingZerosDigits(nm1)
	d := append([]W(nil), nm1...)
	shrDigits(d, s)

	x = modPowDigits(x, d, n)
	if cmpDigits(x, one) == 0 || cmpDigits(x, nm1) == 0 {
		return true
	}
	for r := uint(1); r < s; r++ {
		x = modMulDigits(x, x, n)
		if cmpDigits(x, nm1) == 0 {
			return true
		}
		if cmpDigits(x, one) == 0 {
			return false
		}
	}
	return false
}
