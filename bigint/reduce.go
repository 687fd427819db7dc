package bigint

// n9 is N widened to nine words, the working width used throughout
// reduction: N is 250 bits, so a remainder that has just absorbed one
// more bit never exceeds 251 bits and always fits comfortably in nine
// 32-bit words.
var n9 = [9]uint32{N[0], N[1], N[2], N[3], N[4], N[5], N[6], N[7], 0}

func bitAt(w Wide, i int) uint32 {
	return (w[i/32] >> uint(i%32)) & 1
}

func shl1in(rem [9]uint32, bit uint32) [9]uint32 {
	var out [9]uint32
	carry := bit
	for i := 0; i < 9; i++ {
		out[i] = (rem[i] << 1) | carry
		carry = rem[i] >> 31
	}
	return out
}

// Reduce512 reduces a 512-bit value modulo N, returning the canonical
// 250-bit residue. It processes the input one bit at a time from the
// most significant bit down, which keeps the working remainder narrow.
// The conditional subtraction of N is an ordinary branch on the
// remainder's value.
//
// L6 exists alongside N (L) as the pair of tables the specification
// names for this step; this implementation folds by single bits rather
// than by L6-sized chunks, trading the "four iterations" shortcut for a
// version whose correctness does not depend on any unverified arithmetic
// shortcuts.
func Reduce512(w Wide) Scalar {
	var rem [9]uint32
	for i := 511; i >= 0; i-- {
		rem = shl1in(rem, bitAt(w, i))
		if geq9(rem, n9) {
			rem = sub9(rem, n9)
		}
	}
	var s Scalar
	copy(s[:], rem[:8])
	return s
}

// Reduce256 reduces a 256-bit value modulo N.
func Reduce256(x Scalar) Scalar {
	var w Wide
	copy(w[:8], x[:])
	return Reduce512(w)
}

// Negate computes (N - x) mod N for an already-reduced x (0 <= x < N).
func Negate(x Scalar) Scalar {
	if isZeroScalar(x) {
		return x
	}
	var n9x, x9 [9]uint32
	copy(n9x[:], n9[:])
	copy(x9[:8], x[:])
	d := sub9(n9x, x9)
	var s Scalar
	copy(s[:], d[:8])
	return s
}

// AddMod computes (a + b) mod N for reduced a, b.
func AddMod(a, b Scalar) Scalar {
	var sum Wide
	var carry uint64
	for i := 0; i < 8; i++ {
		v := uint64(a[i]) + uint64(b[i]) + carry
		sum[i] = uint32(v)
		carry = v >> 32
	}
	sum[8] = uint32(carry)
	return Reduce512(sum)
}

// SubMod computes (a - b) mod N for reduced a, b.
func SubMod(a, b Scalar) Scalar {
	return AddMod(a, Negate(b))
}

// MulMod computes (a * b) mod N for reduced a, b.
func MulMod(a, b Scalar) Scalar {
	return Reduce512(MulWide(a, b))
}

func isZeroScalar(x Scalar) bool {
	return allZero(x[:])
}
