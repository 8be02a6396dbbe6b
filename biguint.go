package biguint

import (
	"github.com/shabbyrobe/go-biguint/word"
)

// BigUInt is an unsigned integer of exactly S.Digits() words of type W,
// stored least significant digit first, plus a Flag recording overflow and
// related events.
//
// Use a *BigUInt the way you would a *big.Int: values must not be copied by
// assignment, use Clone or Set instead. The zero BigUInt is a valid zero.
// A single value must not be mutated from several goroutines at once.
type BigUInt[W word.Word[W], S Size] struct {
	digits []W
	flag   Flag
}

// d returns the digit storage, allocating it on first use.
func (u *BigUInt[W, S]) d() []W {
	if u.digits == nil {
		u.digits = make([]W, digitCount[S]())
	}
	return u.digits
}

func Zero[W word.Word[W], S Size]() *BigUInt[W, S] {
	return &BigUInt[W, S]{digits: make([]W, digitCount[S]())}
}

func One[W word.Word[W], S Size]() *BigUInt[W, S] {
	u := Zero[W, S]()
	u.digits[0] = u.digits[0].One()
	return u
}

func Max[W word.Word[W], S Size]() *BigUInt[W, S] {
	u := Zero[W, S]()
	for i := range u.digits {
		u.digits[i] = u.digits[i].Max()
	}
	return u
}

// FromArray creates a BigUInt from words, least significant first. Missing
// digits are zero; surplus words are dropped, setting Overflow if any of
// them was nonzero.
func FromArray[W word.Word[W], S Size](words []W) *BigUInt[W, S] {
	u := Zero[W, S]()
	n := copy(u.digits, words)
	if !isZeroDigits(words[n:]) {
		u.flag |= Overflow
	}
	return u
}

// FromWord embeds a scalar of any word width into the low digits. A scalar
// wider than W is split across as many digits as it needs.
func FromWord[W word.Word[W], S Size, T word.Word[T]](v T) *BigUInt[W, S] {
	u := Zero[W, S]()
	placeBits(u, v.AsU128())
	return u
}

func FromUint64[W word.Word[W], S Size](v uint64) *BigUInt[W, S] {
	return FromWord[W, S](word.U64From(v))
}

// placeBits writes v into u starting at digit 0, consuming digits until v
// is exhausted. Overflow is set when nonzero bits do not fit.
func placeBits[W word.Word[W], S Size](u *BigUInt[W, S], v word.U128) {
	d := u.d()
	w := wordBits[W]()
	for i := 0; !v.IsZero(); i++ {
		if i >= len(d) {
			u.flag |= Overflow
			return
		}
		d[i] = d[i].FromU128(v)
		v = v.Rsh(w)
	}
}

func (u *BigUInt[W, S]) Clone() *BigUInt[W, S] {
	return &BigUInt[W, S]{
		digits: append([]W(nil), u.d()...),
		flag:   u.flag,
	}
}

// Set copies v's digits and flags into u and returns u.
func (u *BigUInt[W, S]) Set(v *BigUInt[W, S]) *BigUInt[W, S] {
	copy(u.d(), v.d())
	u.flag = v.flag
	return u
}

// Len returns the number of digits.
func (u *BigUInt[W, S]) Len() int { return digitCount[S]() }

// Bits returns the total width in bits.
func (u *BigUInt[W, S]) Bits() uint { return uint(digitCount[S]()) * wordBits[W]() }

// Digits returns a copy of the digits, least significant first.
func (u *BigUInt[W, S]) Digits() []W { return append([]W(nil), u.d()...) }

func (u *BigUInt[W, S]) Digit(i int) W { return u.d()[i] }

func (u *BigUInt[W, S]) SetDigit(i int, w W) { u.d()[i] = w }

func (u *BigUInt[W, S]) SetZero() {
	setZeroDigits(u.d())
}

func (u *BigUInt[W, S]) SetOne() {
	d := u.d()
	setZeroDigits(d)
	d[0] = d[0].One()
}

func (u *BigUInt[W, S]) SetMax() {
	d := u.d()
	for i := range d {
		d[i] = d[i].Max()
	}
}

func (u *BigUInt[W, S]) IsZero() bool { return isZeroDigits(u.d()) }

func (u *BigUInt[W, S]) IsOne() bool {
	d := u.d()
	return d[0] == d[0].One() && isZeroDigits(d[1:])
}

func (u *BigUInt[W, S]) IsMax() bool {
	for _, w := range u.d() {
		if w != w.Max() {
			return false
		}
	}
	return true
}

func (u *BigUInt[W, S]) IsOdd() bool  { return u.d()[0].IsOdd() }
func (u *BigUInt[W, S]) IsEven() bool { return !u.IsOdd() }

func (u *BigUInt[W, S]) IsMSBSet() bool {
	d := u.d()
	return d[len(d)-1].IsMSBSet()
}

// Cmp compares digits from the most significant down. Flags are ignored.
func (u *BigUInt[W, S]) Cmp(n *BigUInt[W, S]) int { return cmpDigits(u.d(), n.d()) }

func (u *BigUInt[W, S]) Equal(n *BigUInt[W, S]) bool            { return u.Cmp(n) == 0 }
func (u *BigUInt[W, S]) GreaterThan(n *BigUInt[W, S]) bool      { return u.Cmp(n) > 0 }
func (u *BigUInt[W, S]) GreaterOrEqualTo(n *BigUInt[W, S]) bool { return u.Cmp(n) >= 0 }
func (u *BigUInt[W, S]) LessThan(n *BigUInt[W, S]) bool         { return u.Cmp(n) < 0 }
func (u *BigUInt[W, S]) LessOrEqualTo(n *BigUInt[W, S]) bool    { return u.Cmp(n) <= 0 }

// CmpWord compares u with a single-digit value.
func (u *BigUInt[W, S]) CmpWord(w W) int {
	d := u.d()
	if !isZeroDigits(d[1:]) {
		return 1
	}
	return d[0].Cmp(w)
}
