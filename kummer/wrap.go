package kummer

import "github.com/qdsagolang/qdsa-gs/field"

// Wrap computes the wrapped (X/Y, X/Z, X/T) representation of p using a
// single shared inversion of Y*Z*T, and returns it. Wrap is only defined
// when Y, Z and T are all nonzero; callers (the fixed base point and
// public keys) are arranged so that always holds.
func Wrap(p *Point) WrappedPoint {
	var yz, yzt, inv field.Elem
	yz.Mul(&p.Y, &p.Z)
	yzt.Mul(&yz, &p.T)
	inv.Invert(&yzt)

	var w WrappedPoint
	var zt, yt field.Elem
	zt.Mul(&p.Z, &p.T)
	yt.Mul(&p.Y, &p.T)

	var num field.Elem
	num.Mul(&p.X, &zt)
	w.Y.Mul(&num, &inv)

	num.Mul(&p.X, &yt)
	w.Z.Mul(&num, &inv)

	num.Mul(&p.X, &yz)
	w.T.Mul(&num, &inv)

	w.X = field.One
	return w
}

// Unwrap reconstructs a projective Point whose wrapped form equals w,
// without requiring an inversion: it scales by the product of all three
// ratios, so (unwrap(w).X / unwrap(w).Y) == w.Y and so on.
func Unwrap(w *WrappedPoint) Point {
	var p Point
	p.Y.Mul(&w.Z, &w.T)
	p.Z.Mul(&w.Y, &w.T)
	p.T.Mul(&w.Y, &w.Z)
	p.X.Mul(&p.Y, &w.Y)
	return p
}
