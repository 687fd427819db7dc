package field

// sqmul sets z = y^(2^n) * w: square y n times, then multiply by w. Used to
// lift an accumulated "2^k - 1" exponent to "2^(k+n) - 1" by composing with
// a previously computed "2^n - 1" power, the classic pattern for building
// large pseudo-Mersenne exponentiation chains out of a handful of
// multiplies.
func sqmul(z, y *Elem, n int, w *Elem) {
	t := *y
	for i := 0; i < n; i++ {
		t.Square(&t)
	}
	z.Mul(&t, w)
}

// chain2to125 computes x^(2^125 - 1) via the fixed addition chain: build
// x^(2^4-1) directly (x^2, x^3, x^12, x^15), then repeatedly lift the
// exponent 5 -> 10 -> 20 -> 40 -> 80 -> 120 -> 124 -> 125, composing each
// step with an already-computed "2^k - 1" power as described in the field
// layer's specification.
func chain2to125(x *Elem) Elem {
	var x2, x3, x12, x15 Elem
	x2.Square(x)
	x3.Mul(&x2, x) // x^3 = 2^2-1

	x12.Square(&x3)
	x12.Square(&x12) // x^12

	x15.Mul(&x12, &x3) // x^15 = 2^4-1

	var x5, x10, x20, x40, x80, x120, x124, x125 Elem
	sqmul(&x5, &x15, 1, x)     // 2^5-1
	sqmul(&x10, &x5, 5, &x5)   // 2^10-1
	sqmul(&x20, &x10, 10, &x10) // 2^20-1
	sqmul(&x40, &x20, 20, &x20) // 2^40-1
	sqmul(&x80, &x40, 40, &x40) // 2^80-1
	sqmul(&x120, &x80, 40, &x40) // 2^120-1
	sqmul(&x124, &x120, 4, &x15) // 2^124-1
	sqmul(&x125, &x124, 1, x)    // 2^125-1

	return x125
}

// Invert sets z = x^(p-2) = x^-1 (mod p) and returns z. The input must be
// nonzero; Invert(0) returns 0.
//
// Since (p-3)/4 = 2^125-1 and p-2 = 4*(2^125-1) + 1, the inverse is
// obtained from the same chain used by PowMinusQuarter: square the
// 2^125-1 power twice (multiplying its exponent by 4) and multiply by x
// once more.
func (z *Elem) Invert(x *Elem) *Elem {
	acc := chain2to125(x)
	acc.Square(&acc)
	acc.Square(&acc)
	z.Mul(&acc, x)
	return z
}

// PowMinusQuarter sets z = x^((p-3)/4) and returns z, matching the field
// layer's pow_minus_half contract used by square-root extraction.
func (z *Elem) PowMinusQuarter(x *Elem) *Elem {
	*z = chain2to125(x)
	return z
}

// HasSqrt attempts to compute a square root of delta with its low bit
// equal to sigma (sigma must be 0 or 1), storing it in r. It returns true
// iff delta is a nonzero quadratic residue (delta == 0 is not a valid
// input: callers must have already established delta != 0, as required
// whenever this is reached with k2 != 0 in decompression).
func HasSqrt(r *Elem, delta *Elem, sigma uint32) bool {
	var t, candidate, check Elem
	t.PowMinusQuarter(delta)
	candidate.Mul(&t, delta)
	check.Square(&candidate)
	if !check.Equal(*delta) {
		return false
	}
	candidate.Freeze()
	if candidate.L0&1 != sigma&1 {
		candidate.Negate()
	}
	*r = candidate
	return true
}
