package biguint

import "github.com/shabbyrobe/go-biguint/word"

// Size fixes the number of digits in a BigUInt at the type level. Types that
// implement it are never instantiated with data; only Digits is called on
// their zero value.
type Size interface {
	Digits() int
}

type (
	D1   struct{}
	D2   struct{}
	D4   struct{}
	D8   struct{}
	D16  struct{}
	D32  struct{}
	D64  struct{}
	D128 struct{}
	D256 struct{}
	D512 struct{}
)

func (D1) Digits() int   { return 1 }
func (D2) Digits() int   { return 2 }
func (D4) Digits() int   { return 4 }
func (D8) Digits() int   { return 8 }
func (D16) Digits() int  { return 16 }
func (D32) Digits() int  { return 32 }
func (D64) Digits() int  { return 64 }
func (D128) Digits() int { return 128 }
func (D256) Digits() int { return 256 }
func (D512) Digits() int { return 512 }

// Common key-sized integers over 64-bit digits.
type (
	UInt128  = BigUInt[word.U64, D2]
	UInt256  = BigUInt[word.U64, D4]
	UInt512  = BigUInt[word.U64, D8]
	UInt1024 = BigUInt[word.U64, D16]
	UInt2048 = BigUInt[word.U64, D32]
	UInt4096 = BigUInt[word.U64, D64]
)

func digitCount[S Size]() int {
	var s S
	return s.Digits()
}

func wordBits[W word.Word[W]]() uint {
	var w W
	return w.Bits()
}
