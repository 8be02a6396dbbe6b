package biguint

// LshAssign shifts u left by n bits. A negative n shifts right by -n
// instead. Shifting out a nonzero bit sets Overflow.
func (u *BigUInt[W, S]) LshAssign(n int) {
	if n < 0 {
		u.shr(negShift(n))
		return
	}
	u.shl(uint(n))
}

// RshAssign shifts u right by n bits. A negative n shifts left by -n
// instead. Shifting out a nonzero bit sets Underflow.
func (u *BigUInt[W, S]) RshAssign(n int) {
	if n < 0 {
		u.shl(negShift(n))
		return
	}
	u.shr(uint(n))
}

// negShift returns the magnitude of a negative n. It is written so that the
// most negative int does not overflow.
func negShift(n int) uint { return uint(-(n + 1)) + 1 }

func (u *BigUInt[W, S]) shl(n uint) {
	if shlDigits(u.d(), n) {
		u.flag |= Overflow
	}
}

func (u *BigUInt[W, S]) shr(n uint) {
	if shrDigits(u.d(), n) {
		u.flag |= Underflow
	}
}

func (u *BigUInt[W, S]) Lsh(n int) *BigUInt[W, S] {
	out := u.Clone()
	out.LshAssign(n)
	return out
}

func (u *BigUInt[W, S]) Rsh(n int) *BigUInt[W, S] {
	out := u.Clone()
	out.RshAssign(n)
	return out
}

func (u *BigUInt[W, S]) AndAssign(v *BigUInt[W, S]) {
	d, vd := u.d(), v.d()
	for i := range d {
		d[i] = d[i].And(vd[i])
	}
}

func (u *BigUInt[W, S]) OrAssign(v *BigUInt[W, S]) {
	d, vd := u.d(), v.d()
	for i := range d {
		d[i] = d[i].Or(vd[i])
	}
}

func (u *BigUInt[W, S]) XorAssign(v *BigUInt[W, S]) {
	d, vd := u.d(), v.d()
	for i := range d {
		d[i] = d[i].Xor(vd[i])
	}
}

func (u *BigUInt[W, S]) NotAssign() {
	d := u.d()
	for i := range d {
		d[i] = d[i].Not()
	}
}

func (u *BigUInt[W, S]) And(v *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.AndAssign(v)
	return out
}

func (u *BigUInt[W, S]) Or(v *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.OrAssign(v)
	return out
}

func (u *BigUInt[W, S]) Xor(v *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.XorAssign(v)
	return out
}

func (u *BigUInt[W, S]) Not() *BigUInt[W, S] {
	out := u.Clone()
	out.NotAssign()
	return out
}

func (u *BigUInt[W, S]) LeadingZeros() uint  { return leadingZerosDigits(u.d()) }
func (u *BigUInt[W, S]) TrailingZeros() uint { return trailingZerosDigits(u.d()) }

// BitLen returns the number of bits required to represent u; 0 for zero.
func (u *BigUInt[W, S]) BitLen() uint { return bitLenDigits(u.d()) }

func (u *BigUInt[W, S]) CountOnes() uint {
	var n uint
	for _, w := range u.d() {
		n += w.OnesCount()
	}
	return n
}

// Bit returns the value of bit i. Bits beyond the width are 0.
func (u *BigUInt[W, S]) Bit(i uint) uint {
	w := wordBits[W]()
	d := u.d()
	idx := int(i / w)
	if idx >= len(d) {
		return 0
	}
	if d[idx].Rsh(i % w).IsOdd() {
		return 1
	}
	return 0
}

// SetBitAssign sets bit i to 1 if on, otherwise 0. Setting a bit beyond the
// width sets Overflow and leaves the digits unchanged.
func (u *BigUInt[W, S]) SetBitAssign(i uint, on bool) {
	w := wordBits[W]()
	d := u.d()
	idx := int(i / w)
	if idx >= len(d) {
		if on {
			u.flag |= Overflow
		}
		return
	}
	mask := d[idx].One().Lsh(i % w)
	if on {
		d[idx] = d[idx].Or(mask)
	} else {
		d[idx] = d[idx].And(mask.Not())
	}
}
