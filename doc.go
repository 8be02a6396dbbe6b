/*
Package biguint provides fixed-width unsigned integers of arbitrary size,
built from an array of machine words.

A BigUInt is parameterised by its digit type (any word.Word: 8, 16, 32, 64
or 128 bits) and by a Size that fixes the number of digits at compile time:

	type Key = biguint.BigUInt[word.U64, biguint.D32] // 2048 bits

Common sizes over 64-bit digits have aliases, UInt128 through UInt4096.

Arithmetic wraps at the type's width, as Go's native unsigned integers do.
Rather than failing, every value carries a Flag that records what happened
to it:

	Overflow       a carry escaped the top digit
	Underflow      a borrow escaped the top digit
	Untrustable    Overflow|Underflow: more than one wrap, magnitude unknown
	Infinity       the result stands in for an unbounded one
	DividedByZero  a division, remainder or modulus by zero was attempted

Flags are ignored by comparison.

Simple example:

	a := biguint.MustFromString[word.U64, biguint.D4]("ffffffffffffffffffffffff", 16)
	b := a.Mul(a)
	fmt.Println(b, b.Flags())
	// Output: 6277101735386680763835789423049210091073826769276946612225 none

Values are created with:

	Zero[W, S]() *BigUInt[W, S]
	One[W, S]() *BigUInt[W, S]
	Max[W, S]() *BigUInt[W, S]
	FromArray[W, S](words []W) *BigUInt[W, S]
	FromWord[W, S, T](v T) *BigUInt[W, S]
	FromUint64[W, S](v uint64) *BigUInt[W, S]
	FromString[W, S](s string, radix int) (*BigUInt[W, S], error)
	FromBigInt[W, S](v *big.Int) (out *BigUInt[W, S], accurate bool)

BigUInt supports fmt.Formatter and fmt.Stringer.

The modular and number-theoretic operations (ModularPow, IRoot,
IsPrimeMillerRabin and friends) are not constant-time.
*/
package biguint
