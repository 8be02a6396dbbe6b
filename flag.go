package biguint

import "strings"

// Flag is the status set carried by every BigUInt. It is a best-effort
// diagnostic: it records that something happened, not how much was lost.
type Flag uint8

const (
	Overflow Flag = 1 << iota
	Underflow
	Infinity
	DividedByZero

	// Untrustable is the state where the magnitude of a value can no longer
	// be trusted because several wrapping events have been recorded.
	Untrustable = Overflow | Underflow
)

var flagNames = [...]struct {
	f    Flag
	name string
}{
	{Overflow, "overflow"},
	{Underflow, "underflow"},
	{Infinity, "infinity"},
	{DividedByZero, "divided-by-zero"},
}

func (f Flag) Has(v Flag) bool { return f&v == v }

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, n := range flagNames {
		if f&n.f != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// noteOverflow records a carry escaping the most significant digit. A carry
// cancels a previous borrow; a second carry makes the value untrustable.
// Untrustable never decays.
func (f *Flag) noteOverflow() {
	switch {
	case f.Has(Untrustable):
	case f.Has(Underflow):
		*f &^= Underflow
	case f.Has(Overflow):
		*f |= Untrustable
	default:
		*f |= Overflow
	}
}

// noteUnderflow is the mirror of noteOverflow for a borrow escaping the most
// significant digit.
func (f *Flag) noteUnderflow() {
	switch {
	case f.Has(Untrustable):
	case f.Has(Overflow):
		*f &^= Overflow
	case f.Has(Underflow):
		*f |= Untrustable
	default:
		*f |= Underflow
	}
}

func (u *BigUInt[W, S]) Flags() Flag { return u.flag }

func (u *BigUInt[W, S]) IsOverflow() bool      { return u.flag.Has(Overflow) }
func (u *BigUInt[W, S]) IsUnderflow() bool     { return u.flag.Has(Underflow) }
func (u *BigUInt[W, S]) IsInfinity() bool      { return u.flag.Has(Infinity) }
func (u *BigUInt[W, S]) IsDividedByZero() bool { return u.flag.Has(DividedByZero) }
func (u *BigUInt[W, S]) IsUntrustable() bool   { return u.flag.Has(Untrustable) }

func (u *BigUInt[W, S]) SetOverflow()      { u.flag |= Overflow }
func (u *BigUInt[W, S]) SetUnderflow()     { u.flag |= Underflow }
func (u *BigUInt[W, S]) SetInfinity()      { u.flag |= Infinity }
func (u *BigUInt[W, S]) SetDividedByZero() { u.flag |= DividedByZero }
func (u *BigUInt[W, S]) SetUntrustable()   { u.flag |= Untrustable }

func (u *BigUInt[W, S]) ResetOverflow()      { u.flag &^= Overflow }
func (u *BigUInt[W, S]) ResetUnderflow()     { u.flag &^= Underflow }
func (u *BigUInt[W, S]) ResetInfinity()      { u.flag &^= Infinity }
func (u *BigUInt[W, S]) ResetDividedByZero() { u.flag &^= DividedByZero }
func (u *BigUInt[W, S]) ResetAllFlags()      { u.flag = 0 }
