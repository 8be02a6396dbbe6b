package word

import (
	"math/bits"
	"strconv"
)

// Unsigned lists the Go integer types a Native word can wrap. uint and
// uintptr are excluded; their width depends on the platform.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Native is a Word backed by a Go unsigned integer type. All four native
// widths share this one implementation.
type Native[T Unsigned] struct {
	v T
}

type (
	U8  = Native[uint8]
	U16 = Native[uint16]
	U32 = Native[uint32]
	U64 = Native[uint64]
)

func U8From(v uint8) U8    { return U8{v: v} }
func U16From(v uint16) U16 { return U16{v: v} }
func U32From(v uint32) U32 { return U32{v: v} }
func U64From(v uint64) U64 { return U64{v: v} }

// Value returns the underlying Go integer.
func (n Native[T]) Value() T { return n.v }

func (n Native[T]) Bits() uint { return uint(bits.OnesCount64(uint64(^T(0)))) }

func (n Native[T]) String() string { return strconv.FormatUint(uint64(n.v), 10) }

func (Native[T]) Zero() Native[T] { return Native[T]{} }
func (Native[T]) One() Native[T]  { return Native[T]{v: 1} }
func (Native[T]) Max() Native[T]  { return Native[T]{v: ^T(0)} }
func (Native[T]) Min() Native[T]  { return Native[T]{} }

func (n Native[T]) IsZero() bool { return n.v == 0 }

func (n Native[T]) WrappingAdd(r Native[T]) Native[T] { return Native[T]{v: n.v + r.v} }
func (n Native[T]) WrappingSub(r Native[T]) Native[T] { return Native[T]{v: n.v - r.v} }
func (n Native[T]) WrappingMul(r Native[T]) Native[T] { return Native[T]{v: n.v * r.v} }

func (n Native[T]) WrappingDiv(r Native[T]) Native[T] {
	if r.v == 0 {
		panic(errDivideByZero)
	}
	return Native[T]{v: n.v / r.v}
}

func (n Native[T]) WrappingRem(r Native[T]) Native[T] {
	if r.v == 0 {
		panic(errDivideByZero)
	}
	return Native[T]{v: n.v % r.v}
}

func (n Native[T]) OverflowingAdd(r Native[T]) (Native[T], bool) {
	s := n.v + r.v
	return Native[T]{v: s}, s < n.v
}

func (n Native[T]) OverflowingSub(r Native[T]) (Native[T], bool) {
	d := n.v - r.v
	return Native[T]{v: d}, d > n.v
}

func (n Native[T]) OverflowingMul(r Native[T]) (Native[T], bool) {
	lo, hi := n.WideningMul(r)
	return lo, hi.v != 0
}

// Unsigned division can never overflow; these exist to complete the set.
func (n Native[T]) OverflowingDiv(r Native[T]) (Native[T], bool) { return n.WrappingDiv(r), false }
func (n Native[T]) OverflowingRem(r Native[T]) (Native[T], bool) { return n.WrappingRem(r), false }

func (n Native[T]) CheckedAdd(r Native[T]) (Native[T], bool) {
	s, over := n.OverflowingAdd(r)
	return s, !over
}

func (n Native[T]) CheckedSub(r Native[T]) (Native[T], bool) {
	d, under := n.OverflowingSub(r)
	return d, !under
}

func (n Native[T]) CheckedMul(r Native[T]) (Native[T], bool) {
	p, over := n.OverflowingMul(r)
	return p, !over
}

func (n Native[T]) CheckedDiv(r Native[T]) (Native[T], bool) {
	if r.v == 0 {
		return Native[T]{}, false
	}
	return Native[T]{v: n.v / r.v}, true
}

func (n Native[T]) CheckedRem(r Native[T]) (Native[T], bool) {
	if r.v == 0 {
		return Native[T]{}, false
	}
	return Native[T]{v: n.v % r.v}, true
}

func (n Native[T]) WideningMul(r Native[T]) (lo, hi Native[T]) {
	w := n.Bits()
	if w == 64 {
		h, l := bits.Mul64(uint64(n.v), uint64(r.v))
		return Native[T]{v: T(l)}, Native[T]{v: T(h)}
	}
	p := uint64(n.v) * uint64(r.v)
	return Native[T]{v: T(p)}, Native[T]{v: T(p >> w)}
}

func (n Native[T]) CarryingMul(r, carry Native[T]) (lo, hi Native[T]) {
	lo, hi = n.WideningMul(r)
	s := lo.v + carry.v
	if s < lo.v {
		hi.v++
	}
	lo.v = s
	return lo, hi
}

func (n Native[T]) WideningQuoRem(lo, r Native[T]) (q, rem Native[T]) {
	if r.v == 0 {
		panic(errDivideByZero)
	}
	w := n.Bits()
	if w == 64 {
		qv, rv := bits.Div64(uint64(n.v), uint64(lo.v), uint64(r.v))
		return Native[T]{v: T(qv)}, Native[T]{v: T(rv)}
	}
	x := uint64(n.v)<<w | uint64(lo.v)
	return Native[T]{v: T(x / uint64(r.v))}, Native[T]{v: T(x % uint64(r.v))}
}

func (n Native[T]) Cmp(r Native[T]) int {
	if n.v > r.v {
		return 1
	} else if n.v < r.v {
		return -1
	}
	return 0
}

func (n Native[T]) And(r Native[T]) Native[T] { return Native[T]{v: n.v & r.v} }
func (n Native[T]) Or(r Native[T]) Native[T]  { return Native[T]{v: n.v | r.v} }
func (n Native[T]) Xor(r Native[T]) Native[T] { return Native[T]{v: n.v ^ r.v} }
func (n Native[T]) Not() Native[T]            { return Native[T]{v: ^n.v} }
func (n Native[T]) Lsh(s uint) Native[T]      { return Native[T]{v: n.v << s} }
func (n Native[T]) Rsh(s uint) Native[T]      { return Native[T]{v: n.v >> s} }

func (n Native[T]) LeadingZeros() uint {
	return uint(bits.LeadingZeros64(uint64(n.v))) - (64 - n.Bits())
}

func (n Native[T]) TrailingZeros() uint {
	if n.v == 0 {
		return n.Bits()
	}
	return uint(bits.TrailingZeros64(uint64(n.v)))
}

func (n Native[T]) OnesCount() uint { return uint(bits.OnesCount64(uint64(n.v))) }

func (n Native[T]) RotateLeft(k int) Native[T] {
	w := int(n.Bits())
	k = ((k % w) + w) % w
	if k == 0 {
		return n
	}
	return Native[T]{v: n.v<<uint(k) | n.v>>uint(w-k)}
}

func (n Native[T]) RotateRight(k int) Native[T] { return n.RotateLeft(-k) }

func (n Native[T]) IsMSBSet() bool { return n.v>>(n.Bits()-1) != 0 }
func (n Native[T]) IsOdd() bool    { return n.v&1 != 0 }

func (n Native[T]) ModularAdd(r, m Native[T]) Native[T] { return modularAdd(n, r, m) }
func (n Native[T]) ModularSub(r, m Native[T]) Native[T] { return modularSub(n, r, m) }
func (n Native[T]) ModularPow(e, m Native[T]) Native[T] { return modularPow(n, e, m) }

func (n Native[T]) ModularMul(r, m Native[T]) Native[T] {
	if m.v == 0 {
		panic(errModuloZero)
	}
	a, b, mod := uint64(n.v%m.v), uint64(r.v%m.v), uint64(m.v)
	if n.Bits() <= 32 {
		return Native[T]{v: T(a * b % mod)}
	}
	hi, lo := bits.Mul64(a, b)
	return Native[T]{v: T(bits.Rem64(hi, lo, mod))}
}

func (n Native[T]) ISqrt() Native[T]         { return iroot(n, 2) }
func (n Native[T]) IRoot(exp uint) Native[T] { return iroot(n, exp) }

func (n Native[T]) IsPrimeMillerRabin(repetition int) bool {
	return isPrimeMillerRabin(n, repetition)
}

func (n Native[T]) TestMillerRabin(witness Native[T]) bool {
	return testMillerRabin(n, witness)
}

func (n Native[T]) Uint64() uint64 { return uint64(n.v) }
func (n Native[T]) AsU128() U128   { return U128{lo: uint64(n.v)} }

func (Native[T]) FromUint64(v uint64) Native[T] { return Native[T]{v: T(v)} }
func (Native[T]) FromU128(v U128) Native[T]     { return Native[T]{v: T(v.lo)} }
