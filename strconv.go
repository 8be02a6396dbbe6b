package biguint

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shabbyrobe/go-biguint/word"
)

const (
	MinRadix = 2
	MaxRadix = 62
)

// digitChars maps digit values to characters: 0-9, then A-Z, then a-z.
const digitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	ErrInvalidRadix = errors.New("biguint: radix out of range")
	ErrInvalidDigit = errors.New("biguint: invalid digit")
	ErrEmptyString  = errors.New("biguint: no digits")
)

var digitValues = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(digitChars); i++ {
		t[digitChars[i]] = int8(i)
	}
	return t
}()

// FromString parses s in the given radix (2 to 62). Digits above 9 are A-Z
// then a-z. Up to radix 36 letters are case-insensitive, as with
// big.Int.SetString; above it a-z stand for 36 to 61. Underscores are
// separators and are skipped. A value too large for the type wraps, with
// flags recorded as AddAssign and MulAssign would.
func FromString[W word.Word[W], S Size](s string, radix int) (*BigUInt[W, S], error) {
	if radix < MinRadix || radix > MaxRadix {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadix, radix)
	}

	u := Zero[W, S]()
	r := FromUint64[W, S](uint64(radix))
	var digits int

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			continue
		}
		v := digitValues[c]
		if radix <= 36 && c >= 'a' && c <= 'z' {
			v -= 26
		}
		if v < 0 || int(v) >= radix {
			return nil, fmt.Errorf("%w: %q at offset %d in radix %d", ErrInvalidDigit, c, i, radix)
		}
		u.MulAssign(r)
		u.AddWordAssign(u.digits[0].FromUint64(uint64(v)))
		digits++
	}

	if digits == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyString, s)
	}
	return u, nil
}

// MustFromString is like FromString but panics if s cannot be parsed. It is
// intended for constants and tests.
func MustFromString[W word.Word[W], S Size](s string, radix int) *BigUInt[W, S] {
	u, err := FromString[W, S](s, radix)
	if err != nil {
		panic(err)
	}
	return u
}

// ToString formats u in the given radix (2 to 62) by repeated short division
// by the radix.
func (u *BigUInt[W, S]) ToString(radix int) (string, error) {
	if radix < MinRadix || radix > MaxRadix {
		return "", fmt.Errorf("%w: %d", ErrInvalidRadix, radix)
	}
	if u.IsZero() {
		return "0", nil
	}

	var r W
	r = r.FromUint64(uint64(radix))
	v := append([]W(nil), u.d()...)

	var buf []byte
	for !isZeroDigits(v) {
		rem := quoWordDigits(v, r)
		buf = append(buf, digitChars[rem.Uint64()])
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}

func (u *BigUInt[W, S]) String() string {
	s, _ := u.ToString(10)
	return s
}

func (u *BigUInt[W, S]) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u *BigUInt[W, S]) IntoBigInt(b *big.Int) {
	b.SetUint64(0)
	var tmp big.Int
	d := u.d()
	w := wordBits[W]()
	for i := len(d) - 1; i >= 0; i-- {
		b.Lsh(b, w)
		d[i].AsU128().IntoBigInt(&tmp)
		b.Or(b, &tmp)
	}
}

func (u *BigUInt[W, S]) AsBigInt() *big.Int {
	var b big.Int
	u.IntoBigInt(&b)
	return &b
}

// FromBigInt creates a BigUInt from a big.Int. Values that do not fit are
// truncated to the low bits with accurate set to false; negative values
// return zero and false.
func FromBigInt[W word.Word[W], S Size](v *big.Int) (out *BigUInt[W, S], accurate bool) {
	out = Zero[W, S]()
	if v.Sign() < 0 {
		return out, false
	}

	w := wordBits[W]()
	mask := new(big.Int).Lsh(big.NewInt(1), w)
	mask.Sub(mask, big.NewInt(1))

	rest := new(big.Int).Set(v)
	var part big.Int
	for i := range out.digits {
		part.And(rest, mask)
		lo, _ := word.U128FromBigInt(&part)
		out.digits[i] = out.digits[i].FromU128(lo)
		rest.Rsh(rest, w)
	}

	if rest.Sign() != 0 {
		out.flag |= Overflow
		return out, false
	}
	return out, true
}
