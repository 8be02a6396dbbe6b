package biguint

import "github.com/shabbyrobe/go-biguint/word"

// The functions in this file operate on little-endian digit slices of equal
// length and never touch flags; BigUInt methods wrap them with the flag
// bookkeeping.

func isZeroDigits[W word.Word[W]](d []W) bool {
	for _, w := range d {
		if !w.IsZero() {
			return false
		}
	}
	return true
}

func setZeroDigits[W word.Word[W]](d []W) {
	var zero W
	for i := range d {
		d[i] = zero
	}
}

func cmpDigits[W word.Word[W]](a, b []W) int {
	for i := len(a) - 1; i >= 0; i-- {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// addDigits adds b into a and reports whether a carry escaped the top digit.
func addDigits[W word.Word[W]](a, b []W) (carry bool) {
	var one W
	one = one.One()
	for i := range a {
		mid, c := a[i].OverflowingAdd(b[i])
		if carry {
			var c2 bool
			mid, c2 = mid.OverflowingAdd(one)
			c = c || c2
		}
		a[i], carry = mid, c
	}
	return carry
}

// subDigits subtracts b from a and reports whether a borrow escaped the top
// digit.
func subDigits[W word.Word[W]](a, b []W) (borrow bool) {
	var one W
	one = one.One()
	for i := range a {
		mid, c := a[i].OverflowingSub(b[i])
		if borrow {
			var c2 bool
			mid, c2 = mid.OverflowingSub(one)
			c = c || c2
		}
		a[i], borrow = mid, c
	}
	return borrow
}

// addWordDigits adds a single word into a starting at digit 0.
func addWordDigits[W word.Word[W]](a []W, w W) (carry bool) {
	var one W
	one = one.One()
	for i := range a {
		if w.IsZero() {
			return false
		}
		a[i], carry = a[i].OverflowingAdd(w)
		if !carry {
			return false
		}
		w = one
	}
	return carry
}

// mulDigits returns the schoolbook product of a and b truncated to len(a)
// digits. truncated reports that a nonzero partial product or carry fell
// beyond the top digit.
func mulDigits[W word.Word[W]](a, b []W) (res []W, truncated bool) {
	n := len(a)
	res = make([]W, n)

	var one W
	one = one.One()

	for i := 0; i < n; i++ {
		if b[i].IsZero() {
			continue
		}

		var carry W
		for j := 0; i+j < n; j++ {
			lo, hi := a[j].CarryingMul(b[i], carry)
			sum, c := res[i+j].OverflowingAdd(lo)
			if c {
				hi = hi.WrappingAdd(one)
			}
			res[i+j], carry = sum, hi
		}
		if !carry.IsZero() {
			truncated = true
		}

		// Columns at or above n are only inspected for a contribution.
		for j := n - i; j < n && !truncated; j++ {
			if !a[j].IsZero() {
				truncated = true
			}
		}
	}
	return res, truncated
}

func leadingZerosDigits[W word.Word[W]](d []W) uint {
	var total uint
	for i := len(d) - 1; i >= 0; i-- {
		lz := d[i].LeadingZeros()
		total += lz
		if lz != d[i].Bits() {
			break
		}
	}
	return total
}

func trailingZerosDigits[W word.Word[W]](d []W) uint {
	var total uint
	for i := range d {
		tz := d[i].TrailingZeros()
		total += tz
		if tz != d[i].Bits() {
			break
		}
	}
	return total
}

func bitLenDigits[W word.Word[W]](d []W) uint {
	return uint(len(d))*wordBits[W]() - leadingZerosDigits(d)
}

// shlDigits shifts d left by n bits: whole digits first, then the residual
// bits rippled upwards. lost reports whether any nonzero bit was shifted out.
func shlDigits[W word.Word[W]](d []W, n uint) (lost bool) {
	w := wordBits[W]()
	chunk, bit := int(n/w), n%w

	if chunk >= len(d) {
		lost = !isZeroDigits(d)
		setZeroDigits(d)
		return lost
	}

	if chunk > 0 {
		lost = !isZeroDigits(d[len(d)-chunk:])
		copy(d[chunk:], d[:len(d)-chunk])
		setZeroDigits(d[:chunk])
	}

	if bit > 0 {
		var carry W
		for i := range d {
			next := d[i].Rsh(w - bit)
			d[i] = d[i].Lsh(bit).Or(carry)
			carry = next
		}
		lost = lost || !carry.IsZero()
	}
	return lost
}

// shrDigits is the mirror of shlDigits.
func shrDigits[W word.Word[W]](d []W, n uint) (lost bool) {
	w := wordBits[W]()
	chunk, bit := int(n/w), n%w

	if chunk >= len(d) {
		lost = !isZeroDigits(d)
		setZeroDigits(d)
		return lost
	}

	if chunk > 0 {
		lost = !isZeroDigits(d[:chunk])
		copy(d, d[chunk:])
		setZeroDigits(d[len(d)-chunk:])
	}

	if bit > 0 {
		var carry W
		for i := len(d) - 1; i >= 0; i-- {
			next := d[i].Lsh(w - bit)
			d[i] = d[i].Rsh(bit).Or(carry)
			carry = next
		}
		lost = lost || !carry.IsZero()
	}
	return lost
}

// quoWordDigits divides d in place by the single word w, from the top digit
// down, and returns the remainder. w must not be zero.
func quoWordDigits[W word.Word[W]](d []W, w W) (r W) {
	for i := len(d) - 1; i >= 0; i-- {
		d[i], r = r.WideningQuoRem(d[i], w)
	}
	return r
}

// divRemDigits is restoring binary long division: the divisor is shifted up
// to the dividend's most significant bit, then walked back down one bit at a
// time, subtracting wherever it fits. by must not be zero.
func divRemDigits[W word.Word[W]](u, by []W) (q, r []W) {
	n := len(u)
	q = make([]W, n)
	r = append([]W(nil), u...)

	if cmpDigits(r, by) < 0 {
		return q, r
	}

	shift := int(leadingZerosDigits(by) - leadingZerosDigits(r))
	d := append([]W(nil), by...)
	shlDigits(d, uint(shift))

	var one W
	one = one.One()

	for {
		shlDigits(q, 1)

		if cmpDigits(r, d) >= 0 {
			subDigits(r, d)
			q[0] = q[0].Or(one)
		}

		shrDigits(d, 1)

		if shift <= 0 {
			break
		}
		shift--
	}

	return q, r
}

func remDigits[W word.Word[W]](u, by []W) []W {
	_, r := divRemDigits(u, by)
	return r
}
