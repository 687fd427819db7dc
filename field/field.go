// Package field implements arithmetic in the prime field F_p with
// p = 2^127 - 1, the base field of the Gaudry-Schost Kummer surface used
// by the qDSA signature scheme this module implements.
//
// An Elem is a 128-bit value stored as four little-endian 32-bit limbs.
// Addition and subtraction are lazy: the result may exceed p and callers
// must call Freeze (or rely on Equal/IsZero, which freeze internally)
// whenever a canonical representative is required. The top bit of L3 is
// reserved by the kummer package's compression format. Non-canonical
// results of Add, Sub, MulSmall and Mul may have that bit set; Freeze
// always produces a value in [0, p) and therefore a cleared top bit.
package field

import "math/bits"

// Elem is an element of F_p, p = 2^127-1, held as four 32-bit limbs in
// little-endian order: value = L0 + L1*2^32 + L2*2^64 + L3*2^96.
type Elem struct {
	L0, L1, L2, L3 uint32
}

// p = 2^127 - 1, as two 64-bit words (lo, hi).
const (
	pLo uint64 = 0xFFFFFFFFFFFFFFFF
	pHi uint64 = 0x7FFFFFFFFFFFFFFF
)

// Zero is the additive identity.
var Zero = Elem{}

// One is the multiplicative identity.
var One = Elem{L0: 1}

func (e Elem) words() (lo, hi uint64) {
	lo = uint64(e.L0) | uint64(e.L1)<<32
	hi = uint64(e.L2) | uint64(e.L3)<<32
	return
}

func fromWords(lo, hi uint64) Elem {
	return Elem{
		L0: uint32(lo), L1: uint32(lo >> 32),
		L2: uint32(hi), L3: uint32(hi >> 32),
	}
}

// fold reduces a value given as lo + hi*2^64 + extra*2^128 modulo p, using
// the pseudo-Mersenne identity 2^127 === 1 (mod p), i.e. 2^128 === 2
// (mod p). extra is expected to be small (a handful of bits at most); the
// loop below converges in one or two iterations for every caller in this
// package.
func fold(lo, hi, extra uint64) (uint64, uint64) {
	for extra != 0 {
		addLo := extra << 1
		addHi := extra >> 63
		var c0, c1 uint64
		lo, c0 = bits.Add64(lo, addLo, 0)
		hi, c1 = bits.Add64(hi, addHi, c0)
		extra = c1
	}
	return lo, hi
}

// Add sets z = x + y in F_p and returns z. The result is bounded but may
// be non-canonical; two further Adds of the result remain representable
// before a Freeze is required.
func (z *Elem) Add(x, y *Elem) *Elem {
	xlo, xhi := x.words()
	ylo, yhi := y.words()
	var c0, c1 uint64
	lo, c0 := bits.Add64(xlo, ylo, 0)
	hi, c1 := bits.Add64(xhi, yhi, c0)
	lo, hi = fold(lo, hi, c1)
	*z = fromWords(lo, hi)
	return z
}

// twoP is 2p = 2^128 - 2, which fits exactly in 128 bits and is used by
// Sub to avoid an explicit borrow chain: z = x + (2p - y).
var twoPLo, twoPHi = ^uint64(1), ^uint64(0)

// Sub sets z = x - y in F_p and returns z.
func (z *Elem) Sub(x, y *Elem) *Elem {
	ylo, yhi := y.words()
	// 2p - y, computed by constant-minus-variable subtraction; y is
	// always bounded well below 2p by the invariants of this package.
	dlo, borrow := bits.Sub64(twoPLo, ylo, 0)
	dhi, _ := bits.Sub64(twoPHi, yhi, borrow)

	xlo, xhi := x.words()
	var c0, c1 uint64
	lo, c0 := bits.Add64(xlo, dlo, 0)
	hi, c1 := bits.Add64(xhi, dhi, c0)
	lo, hi = fold(lo, hi, c1)
	*z = fromWords(lo, hi)
	return z
}

// Negate sets x to -x mod p (canonical: Negate(0) == 0).
func (x *Elem) Negate() *Elem {
	x.Freeze()
	if x.L0|x.L1|x.L2|x.L3 == 0 {
		return x
	}
	lo, hi := x.words()
	rlo, borrow := bits.Sub64(pLo, lo, 0)
	rhi, _ := bits.Sub64(pHi, hi, borrow)
	*x = fromWords(rlo, rhi)
	return x
}

// MulSmall sets z = x * c, where c fits in 16 bits.
func (z *Elem) MulSmall(x *Elem, c uint32) *Elem {
	lo, hi := x.words()
	cc := uint64(c)

	hi0, lo0 := bits.Mul64(lo, cc)
	hi1, lo1 := bits.Mul64(hi, cc)

	mid, carryMid := bits.Add64(hi0, lo1, 0)
	top := hi1 + carryMid

	rlo, rhi := fold(lo0, mid, top)
	*z = fromWords(rlo, rhi)
	return z
}

// reduce256 folds a 256-bit value a0 + a1*2^64 + a2*2^128 + a3*2^192
// modulo p into a (possibly non-canonical) 128-bit value.
func reduce256(a0, a1, a2, a3 uint64) (uint64, uint64) {
	// high128 = a2 + a3*2^64; fold in 2*high128 using 2^128 === 2 (mod p).
	hi2lo, c := bits.Add64(a2, a2, 0)
	hi2hi, c2 := bits.Add64(a3, a3, c)

	lo, carry := bits.Add64(a0, hi2lo, 0)
	hi, carry2 := bits.Add64(a1, hi2hi, carry)
	extra := c2 + carry2

	return fold(lo, hi, extra)
}

// Mul sets z = x * y in F_p via a 128x128->256 schoolbook product followed
// by reduction, and returns z.
func (z *Elem) Mul(x, y *Elem) *Elem {
	xlo, xhi := x.words()
	ylo, yhi := y.words()

	// Schoolbook 128x128 -> 256 bit product via four 64x64 partials.
	h0, l0 := bits.Mul64(xlo, ylo)
	h1, l1 := bits.Mul64(xlo, yhi)
	h2, l2 := bits.Mul64(xhi, ylo)
	h3, l3 := bits.Mul64(xhi, yhi)

	// a0 = l0 (bits 0..63)
	a0 := l0

	// a1 = h0 + l1 + l2 (bits 64..127, with carry into a2)
	mid, c1 := bits.Add64(h0, l1, 0)
	mid, c2 := bits.Add64(mid, l2, 0)
	a1 := mid
	carryInto2 := c1 + c2

	// a2 = h1 + h2 + l3 + carryInto2 (bits 128..191, with carry into a3)
	hi, c3 := bits.Add64(h1, h2, 0)
	hi, c4 := bits.Add64(hi, l3, 0)
	hi, c5 := bits.Add64(hi, carryInto2, 0)
	a2 := hi
	carryInto3 := c3 + c4 + c5

	// a3 = h3 + carryInto3 (bits 192..255)
	a3 := h3 + carryInto3

	lo, hi2 := reduce256(a0, a1, a2, a3)
	*z = fromWords(lo, hi2)
	return z
}

// Square sets z = x*x and returns z.
func (z *Elem) Square(x *Elem) *Elem {
	return z.Mul(x, x)
}

// Freeze reduces x into the canonical range [0, p) and returns x.
func (x *Elem) Freeze() *Elem {
	lo, hi := x.words()
	for {
		rlo, borrow := bits.Sub64(lo, pLo, 0)
		rhi, borrow2 := bits.Sub64(hi, pHi, borrow)
		if borrow2 != 0 {
			break
		}
		lo, hi = rlo, rhi
	}
	*x = fromWords(lo, hi)
	return x
}

// IsZero reports whether x == 0 (mod p). It freezes a copy internally.
func (x Elem) IsZero() bool {
	x.Freeze()
	return x.L0|x.L1|x.L2|x.L3 == 0
}

// Equal reports whether x == y (mod p).
func (x Elem) Equal(y Elem) bool {
	x.Freeze()
	y.Freeze()
	return x == y
}

// ConstantTimeSwap swaps x and y if swap == 1, leaves them unchanged if
// swap == 0; swap must be 0 or 1. Used by the constant-time ladder build.
func ConstantTimeSwap(swap uint32, x, y *Elem) {
	mask := -swap // 0x00000000 or 0xFFFFFFFF
	condSwapWord(&x.L0, &y.L0, mask)
	condSwapWord(&x.L1, &y.L1, mask)
	condSwapWord(&x.L2, &y.L2, mask)
	condSwapWord(&x.L3, &y.L3, mask)
}

func condSwapWord(a, b *uint32, mask uint32) {
	t := mask & (*a ^ *b)
	*a ^= t
	*b ^= t
}

// Hadamard implements the fused "negate x0, Hadamard transform, negate
// result[3]" primitive required throughout the Kummer layer. It must never
// be decomposed into separate calls at call sites: the sign convention
// baked into the surrounding biquadratic forms depends on this exact
// sequence.
func Hadamard(r *[4]Elem, x *[4]Elem) {
	var negx0 Elem
	negx0 = x[0]
	negx0.Negate()

	var r0, r1, r2, r3 Elem
	r0.Add(&negx0, &x[1])
	r0.Add(&r0, &x[2])
	r0.Add(&r0, &x[3])

	var t Elem
	r1.Add(&negx0, &x[1])
	t.Add(&x[2], &x[3])
	r1.Sub(&r1, &t)

	r2.Sub(&negx0, &x[1])
	t.Sub(&x[2], &x[3])
	r2.Add(&r2, &t)

	r3.Sub(&negx0, &x[1])
	t.Sub(&x[2], &x[3])
	r3.Sub(&r3, &t)
	r3.Negate()

	r[0], r[1], r[2], r[3] = r0, r1, r2, r3
}
