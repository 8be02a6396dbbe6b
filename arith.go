package biguint

// Methods ending in Assign mutate the receiver. Their counterparts without
// the suffix work on a clone of the receiver, flags included, and leave the
// receiver untouched.

// AddAssign adds rhs with ripple carry. A carry escaping the top digit is
// recorded with the Overflow rules described on Flag.
func (u *BigUInt[W, S]) AddAssign(rhs *BigUInt[W, S]) {
	if addDigits(u.d(), rhs.d()) {
		u.flag.noteOverflow()
	}
}

// SubAssign subtracts rhs with ripple borrow. A borrow escaping the top digit
// is recorded with the Underflow rules described on Flag.
func (u *BigUInt[W, S]) SubAssign(rhs *BigUInt[W, S]) {
	if subDigits(u.d(), rhs.d()) {
		u.flag.noteUnderflow()
	}
}

// MulAssign multiplies by rhs, keeping the low digits. If any part of the
// product falls beyond the top digit the value is marked untrustable; the
// flag says that bits were lost, not how many.
func (u *BigUInt[W, S]) MulAssign(rhs *BigUInt[W, S]) {
	res, truncated := mulDigits(u.d(), rhs.d())
	copy(u.digits, res)
	if truncated {
		u.flag |= Untrustable
	}
}

// DivAssign replaces u with the floor quotient u/rhs. Division by zero is
// not fatal: u becomes Max, with Infinity and DividedByZero set.
func (u *BigUInt[W, S]) DivAssign(rhs *BigUInt[W, S]) {
	if rhs.IsZero() {
		u.SetMax()
		u.flag |= Infinity | DividedByZero
		return
	}
	q, _ := divRemDigits(u.d(), rhs.d())
	copy(u.digits, q)
}

// RemAssign replaces u with u mod rhs. A zero rhs leaves zero, with
// DividedByZero set.
func (u *BigUInt[W, S]) RemAssign(rhs *BigUInt[W, S]) {
	if rhs.IsZero() {
		u.SetZero()
		u.flag |= DividedByZero
		return
	}
	_, r := divRemDigits(u.d(), rhs.d())
	copy(u.digits, r)
}

func (u *BigUInt[W, S]) Add(rhs *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.AddAssign(rhs)
	return out
}

func (u *BigUInt[W, S]) Sub(rhs *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.SubAssign(rhs)
	return out
}

func (u *BigUInt[W, S]) Mul(rhs *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.MulAssign(rhs)
	return out
}

func (u *BigUInt[W, S]) Div(rhs *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.DivAssign(rhs)
	return out
}

func (u *BigUInt[W, S]) Rem(rhs *BigUInt[W, S]) *BigUInt[W, S] {
	out := u.Clone()
	out.RemAssign(rhs)
	return out
}

// DivRem returns the quotient and remainder from a single division. Both
// start from u's flags; division by zero flags them as Div and Rem would.
func (u *BigUInt[W, S]) DivRem(rhs *BigUInt[W, S]) (q, r *BigUInt[W, S]) {
	q, r = u.Clone(), u.Clone()
	if rhs.IsZero() {
		q.SetMax()
		q.flag |= Infinity | DividedByZero
		r.SetZero()
		r.flag |= DividedByZero
		return q, r
	}
	qd, rd := divRemDigits(u.d(), rhs.d())
	copy(q.digits, qd)
	copy(r.digits, rd)
	return q, r
}

func (u *BigUInt[W, S]) Inc() *BigUInt[W, S] {
	out := u.Clone()
	var one W
	if addWordDigits(out.digits, one.One()) {
		out.flag.noteOverflow()
	}
	return out
}

func (u *BigUInt[W, S]) Dec() *BigUInt[W, S] {
	out := u.Clone()
	out.SubAssign(One[W, S]())
	return out
}

// Pow raises u to exp by square-and-multiply, wrapping on overflow. As with
// Mul, truncation marks the result untrustable.
func (u *BigUInt[W, S]) Pow(exp uint) *BigUInt[W, S] {
	out := u.Clone()
	base := u.Clone()
	out.SetOne()

	for exp > 0 {
		if exp&1 == 1 {
			out.MulAssign(base)
		}
		exp >>= 1
		if exp > 0 {
			base.MulAssign(base)
		}
	}
	if base.IsUntrustable() {
		out.flag |= Untrustable
	}
	return out
}

// Gcd returns the greatest common divisor of u and n using Euclid's
// algorithm. Gcd(0, 0) is 0.
func (u *BigUInt[W, S]) Gcd(n *BigUInt[W, S]) *BigUInt[W, S] {
	a, b := u.Clone(), n.Clone()
	a.flag, b.flag = 0, 0
	for !b.IsZero() {
		a.RemAssign(b)
		a, b = b, a
	}
	a.flag = u.flag
	return a
}

// Lcm returns the least common multiple of u and n. The product is formed
// after dividing by the gcd, so it only overflows when the lcm itself does.
func (u *BigUInt[W, S]) Lcm(n *BigUInt[W, S]) *BigUInt[W, S] {
	if u.IsZero() || n.IsZero() {
		out := u.Clone()
		out.SetZero()
		return out
	}
	out := u.Div(u.Gcd(n))
	out.MulAssign(n)
	return out
}

// The Word methods mix a BigUInt with a single digit.

func (u *BigUInt[W, S]) wordValue(w W) *BigUInt[W, S] {
	v := Zero[W, S]()
	v.digits[0] = w
	return v
}

func (u *BigUInt[W, S]) AddWordAssign(w W) {
	if addWordDigits(u.d(), w) {
		u.flag.noteOverflow()
	}
}

func (u *BigUInt[W, S]) SubWordAssign(w W) { u.SubAssign(u.wordValue(w)) }
func (u *BigUInt[W, S]) MulWordAssign(w W) { u.MulAssign(u.wordValue(w)) }

// DivWordAssign and RemWordAssign divide by a single digit in one pass
// rather than through the general long division. A zero w is handled as
// DivAssign and RemAssign handle a zero rhs.
func (u *BigUInt[W, S]) DivWordAssign(w W) {
	if w.IsZero() {
		u.DivAssign(u.wordValue(w))
		return
	}
	quoWordDigits(u.d(), w)
}

func (u *BigUInt[W, S]) RemWordAssign(w W) {
	if w.IsZero() {
		u.RemAssign(u.wordValue(w))
		return
	}
	r := quoWordDigits(u.d(), w)
	setZeroDigits(u.digits)
	u.digits[0] = r
}

func (u *BigUInt[W, S]) AddWord(w W) *BigUInt[W, S] {
	out := u.Clone()
	out.AddWordAssign(w)
	return out
}

func (u *BigUInt[W, S]) SubWord(w W) *BigUInt[W, S] { return u.Sub(u.wordValue(w)) }
func (u *BigUInt[W, S]) MulWord(w W) *BigUInt[W, S] { return u.Mul(u.wordValue(w)) }

func (u *BigUInt[W, S]) DivWord(w W) *BigUInt[W, S] {
	out := u.Clone()
	out.DivWordAssign(w)
	return out
}

func (u *BigUInt[W, S]) RemWord(w W) *BigUInt[W, S] {
	out := u.Clone()
	out.RemWordAssign(w)
	return out
}
