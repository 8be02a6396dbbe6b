/*
Package word provides the fixed-width unsigned words that make up the digits
of a biguint.BigUInt.

Every supported width satisfies the Word constraint. The 8, 16, 32 and 64-bit
widths are all instances of the single generic Native type:

	U8  = Native[uint8]
	U16 = Native[uint16]
	U32 = Native[uint32]
	U64 = Native[uint64]

The 128-bit width is the U128 struct, which is built from a pair of uint64s.

Words are value types; all operations return new values. Wrapping and
overflowing division by zero panics, as Go's native integer division does.
Checked operations report failure through their second result instead.
*/
package word

import "errors"

var (
	errDivideByZero = errors.New("word: division by zero")
	errModuloZero   = errors.New("word: modulo by zero")
)

// Word is the capability contract every digit width implements. Methods
// that produce a new word ignore the receiver's value where it makes no
// sense to use it (Zero, One, Max, Min, FromUint64, FromU128).
type Word[T any] interface {
	comparable

	Bits() uint

	Zero() T
	One() T
	Max() T
	Min() T
	IsZero() bool

	WrappingAdd(rhs T) T
	WrappingSub(rhs T) T
	WrappingMul(rhs T) T
	WrappingDiv(rhs T) T
	WrappingRem(rhs T) T

	OverflowingAdd(rhs T) (T, bool)
	OverflowingSub(rhs T) (T, bool)
	OverflowingMul(rhs T) (T, bool)
	OverflowingDiv(rhs T) (T, bool)
	OverflowingRem(rhs T) (T, bool)

	CheckedAdd(rhs T) (T, bool)
	CheckedSub(rhs T) (T, bool)
	CheckedMul(rhs T) (T, bool)
	CheckedDiv(rhs T) (T, bool)
	CheckedRem(rhs T) (T, bool)

	// WideningMul returns the full double-width product as a (lo, hi) pair.
	WideningMul(rhs T) (lo, hi T)

	// CarryingMul returns the double-width result of self*rhs + carry, which
	// can never overflow two words.
	CarryingMul(rhs, carry T) (lo, hi T)

	// WideningQuoRem divides the double word (self, lo) by rhs, with self as
	// the high half. self must be less than rhs so the quotient fits in one
	// word. It panics if rhs is zero.
	WideningQuoRem(lo, rhs T) (q, r T)

	Cmp(rhs T) int
	And(rhs T) T
	Or(rhs T) T
	Xor(rhs T) T
	Not() T
	Lsh(n uint) T
	Rsh(n uint) T

	LeadingZeros() uint
	TrailingZeros() uint
	OnesCount() uint
	RotateLeft(k int) T
	RotateRight(k int) T
	IsMSBSet() bool
	IsOdd() bool

	ModularAdd(rhs, modulo T) T
	ModularSub(rhs, modulo T) T
	ModularMul(rhs, modulo T) T
	ModularPow(exp, modulo T) T

	ISqrt() T
	IRoot(exp uint) T

	IsPrimeMillerRabin(repetition int) bool
	TestMillerRabin(witness T) bool

	// Uint64 truncates the word to its low 64 bits.
	Uint64() uint64
	AsU128() U128
	FromUint64(v uint64) T
	FromU128(v U128) T
}

// Convert narrows or widens a word of one width into another. Narrowing
// truncates to the low bits.
func Convert[To Word[To], From Word[From]](v From) To {
	var to To
	return to.FromU128(v.AsU128())
}

// Fits reports whether v can be converted into To without loss.
func Fits[To Word[To], From Word[From]](v From) bool {
	var to To
	return v.LeadingZeros()+to.Bits() >= v.Bits()
}
