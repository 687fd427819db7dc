// Package kummer implements the Gaudry-Schost Kummer surface point
// representation: differential addition/doubling, wrapping, compression
// and decompression, and the T/T_inv matrix transforms.
//
// A Point (the "uncompressed" representation) stores (X, Y, Z, T) as four
// field.Elem values. By convention the first coordinate of every
// non-wrapped point is stored negated (see field.Hadamard); helpers in
// this package preserve that convention and must not be reordered.
package kummer

import "github.com/qdsagolang/qdsa-gs/field"

// Point is an uncompressed Kummer point: four field elements, 64 bytes.
type Point struct {
	X, Y, Z, T field.Elem
}

// WrappedPoint holds the "wrapped" difference representation (X/Y, X/Z,
// X/T) used as the fixed difference point throughout the ladder.
type WrappedPoint struct {
	X, Y, Z, T field.Elem
}

func (p Point) coords() [4]field.Elem { return [4]field.Elem{p.X, p.Y, p.Z, p.T} }

func fromCoords(c [4]field.Elem) Point { return Point{c[0], c[1], c[2], c[3]} }

// mul4, sqr4 and mul4Const (the coordinatewise 4-vector helpers used by
// xDBLADD and the matrix transforms) are generated into
// coordwise_generated.go by internal/gen, since they are four structurally
// identical per-coordinate lines repeated with only the limb varying.

// hdmrd applies the fused Hadamard primitive to a point's four
// coordinates, treated as the 4-vector (X, Y, Z, T).
func hdmrd(p *Point) Point {
	in := p.coords()
	var out [4]field.Elem
	field.Hadamard(&out, &in)
	return fromCoords(out)
}

// H applies the fe1271_H primitive (negate first coordinate, Hadamard,
// negate result's last coordinate) to a point, as used by the verify
// package ahead of the biquadratic forms.
func H(p *Point) Point {
	return hdmrd(p)
}
