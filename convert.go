package biguint

import "github.com/shabbyrobe/go-biguint/word"

// Convert re-packs u into a BigUInt of a different word width and/or digit
// count. Flags are carried over; Overflow is added if nonzero bits do not
// fit in the destination.
func Convert[W2 word.Word[W2], S2 Size, W1 word.Word[W1], S1 Size](u *BigUInt[W1, S1]) *BigUInt[W2, S2] {
	out := Zero[W2, S2]()
	out.flag = u.flag

	src, dst := u.d(), out.digits
	sw, dw := wordBits[W1](), wordBits[W2]()

	if sw >= dw {
		// Each source digit spreads across sw/dw destination digits.
		per := int(sw / dw)
		for i, s := range src {
			v := s.AsU128()
			for p := 0; p < per; p++ {
				idx := i*per + p
				if idx >= len(dst) {
					if !v.IsZero() {
						out.flag |= Overflow
					}
					break
				}
				dst[idx] = dst[idx].FromU128(v)
				v = v.Rsh(dw)
			}
		}
		return out
	}

	// Several source digits gather into one destination digit.
	per := int(dw / sw)
	for i, s := range src {
		idx := i / per
		if idx >= len(dst) {
			if !s.IsZero() {
				out.flag |= Overflow
			}
			continue
		}
		shift := uint(i%per) * sw
		dst[idx] = dst[idx].Or(dst[idx].FromU128(s.AsU128().Lsh(shift)))
	}
	return out
}

// AsWord returns u truncated or widened into a word of type T.
func AsWord[T word.Word[T], W word.Word[W], S Size](u *BigUInt[W, S]) T {
	var out T
	d := u.d()
	w := wordBits[W]()
	var acc word.U128
	for i := 0; i < len(d) && uint(i)*w < 128; i++ {
		acc = acc.Or(d[i].AsU128().Lsh(uint(i) * w))
	}
	return out.FromU128(acc)
}

// Fits reports whether u can be converted to T without loss.
func Fits[T word.Word[T], W word.Word[W], S Size](u *BigUInt[W, S]) bool {
	var t T
	return u.BitLen() <= t.Bits()
}

// AsUint64 truncates u to its low 64 bits. See IsUint64.
func (u *BigUInt[W, S]) AsUint64() uint64 {
	return AsWord[word.U64](u).Value()
}

func (u *BigUInt[W, S]) IsUint64() bool { return u.BitLen() <= 64 }

func (u *BigUInt[W, S]) AsU128() word.U128 { return AsWord[word.U128](u) }
