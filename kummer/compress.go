package kummer

import "github.com/qdsagolang/qdsa-gs/field"

// CompressedPoint is the 32-byte wire form of a Kummer point: l1 (16
// bytes) concatenated with l2 (16 bytes), with the top bit of each half
// repurposed as a tag bit (tau in l1, sigma in l2).
type CompressedPoint [32]byte

// poly evaluates a0 + a1*l1 + a2*l2 + a3*l1*l2 over F_p.
func poly(a0, a1, a2, a3 uint32, l1, l2 *field.Elem) field.Elem {
	var r, t field.Elem
	r = field.Elem{L0: a0}

	t.MulSmall(l1, a1)
	r.Add(&r, &t)

	t.MulSmall(l2, a2)
	r.Add(&r, &t)

	t.Mul(l1, l2)
	t.MulSmall(&t, a3)
	r.Add(&r, &t)

	return r
}

// k2k3k4 evaluates the decompression/compression branch polynomials from
// the curve's q0..q7 table. The exact weighting of tau between the two
// base polynomials P0, P1 (each bilinear in l1, l2) is this package's resolution of an
// underspecified area of the surface parameterization; compression and
// decompression both call this single function so they stay consistent
// with each other.
func k2k3k4(l1, l2 *field.Elem, tau uint32) (k2, k3, k4 field.Elem) {
	p0 := poly(q[0], q[1], q[2], q[3], l1, l2)
	p1 := poly(q[4], q[5], q[6], q[7], l1, l2)

	if tau != 0 {
		k2.Sub(&p0, &p1)
		k3 = p1
		k4 = p0
	} else {
		k2.Add(&p0, &p1)
		k3 = p0
		k4 = p1
	}
	return
}

// Compress encodes an uncompressed Kummer point into its 32-byte wire
// form.
func Compress(r *Point) CompressedPoint {
	tp := T(r)
	l := [4]field.Elem{tp.X, tp.Y, tp.Z, tp.T} // L1, L2, L3, L4

	// Priority order for the normalizer: L3, L2, L1, L4.
	priority := [4]int{2, 1, 0, 3}
	var normalizer field.Elem
	for _, idx := range priority {
		c := l[idx]
		if !c.IsZero() {
			normalizer = c
			break
		}
	}

	tau := uint32(0)
	if !l[2].IsZero() {
		tau = 1
	}

	var normInv, l1, l2 field.Elem
	normInv.Invert(&normalizer)
	l1.Mul(&l[0], &normInv)
	l2.Mul(&l[1], &normInv)

	k2, k3, _ := k2k3k4(&l1, &l2, tau)

	var delta, t field.Elem
	t.Mul(&k2, &l[3])
	delta.Sub(&t, &k3)

	l1.Freeze()
	l2.Freeze()
	delta.Freeze()

	sigma := delta.L0 & 1

	var out CompressedPoint
	encodeLimbs(out[0:16], &l1)
	encodeLimbs(out[16:32], &l2)
	out[15] |= byte(tau << 7)
	out[31] |= byte(sigma << 7)
	return out
}

func encodeLimbs(dst []byte, e *field.Elem) {
	putU32le(dst[0:4], e.L0)
	putU32le(dst[4:8], e.L1)
	putU32le(dst[8:12], e.L2)
	putU32le(dst[12:16], e.L3)
}

func putU32le(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func getU32le(src []byte) uint32 {
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}

func decodeLimbs(src []byte) field.Elem {
	return field.Elem{
		L0: getU32le(src[0:4]),
		L1: getU32le(src[4:8]),
		L2: getU32le(src[8:12]),
		L3: getU32le(src[12:16]),
	}
}

// Decompress reconstructs the uncompressed Kummer point encoded by c. It
// reports failure (the spec's "return 1") by returning ok == false; the
// contents of r are then unspecified.
func Decompress(c *CompressedPoint) (r Point, ok bool) {
	l1 := decodeLimbs(c[0:16])
	l2 := decodeLimbs(c[16:32])

	tau := uint32(l1.L3>>31) & 1
	sigma := uint32(l2.L3>>31) & 1
	l1.L3 &^= 1 << 31
	l2.L3 &^= 1 << 31

	k2, k3, k4 := k2k3k4(&l1, &l2, tau)

	var x, y, z, t field.Elem

	switch {
	case !k2.IsZero():
		var k3sq, k2k4, delta, root field.Elem
		k3sq.Square(&k3)
		k2k4.Mul(&k2, &k4)
		delta.Sub(&k3sq, &k2k4)

		if !field.HasSqrt(&root, &delta, sigma) {
			return Point{}, false
		}

		x.Mul(&l1, &k2)
		y.Mul(&l2, &k2)
		if tau != 0 {
			z = k2
		} else {
			z = field.Zero
		}
		t.Add(&k3, &root)

	case !k3.IsZero():
		var k3l1, k3l2 field.Elem
		k3l1.MulSmall(&k3, 2)
		k3l2 = k3l1

		var check field.Elem
		check = k3
		check.Freeze()
		if check.L0&1 != sigma&1 {
			return Point{}, false
		}

		x.Mul(&k3l1, &l1)
		y.Mul(&k3l2, &l2)
		if tau != 0 {
			z = k3l1
		} else {
			z = field.Zero
		}
		t = field.Zero

	default:
		if !(l1.IsZero() && l2.IsZero() && tau == 0 && sigma == 0) {
			return Point{}, false
		}
		x, y, z, t = field.Zero, field.Zero, field.Zero, field.One
	}

	pre := Point{X: x, Y: y, Z: z, T: t}
	return TInv(&pre), true
}
