// Package verify implements the biquadratic check that confirms a
// candidate Kummer point R is the (signed) sum of two other points,
// sP and hQ, as required by signature verification.
package verify

import (
	"errors"

	"github.com/qdsagolang/qdsa-gs/field"
	"github.com/qdsagolang/qdsa-gs/kummer"
)

// ErrFailed is returned when a candidate fails the verification check:
// either R did not decompress, or one of the six quadratic relations is
// nonzero.
var ErrFailed = errors.New("verify: check failed")

var pairs = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// biiVector computes the B_ii 4-tuple from the H-transformed points p
// and q. Each entry is weighted by muhat and by k1..k4 with sign pattern
// (+, -, -, +); the first entry is additionally negated, matching the
// package-wide convention that a 4-vector's first coordinate is stored
// negated.
func biiVector(p, q *kummer.Point) [4]field.Elem {
	pc := [4]field.Elem{p.X, p.Y, p.Z, p.T}
	qc := [4]field.Elem{q.X, q.Y, q.Z, q.T}

	k := kummer.K1234()
	mu := kummer.MuHat()
	signs := [4]int32{1, -1, -1, 1}

	var out [4]field.Elem
	for i := 0; i < 4; i++ {
		var p2, q2, cross, term field.Elem
		p2.Square(&pc[i])
		q2.Square(&qc[i])
		cross.Mul(&pc[i], &qc[3-i])

		term.Add(&p2, &q2)
		term.Add(&term, &cross)

		var weighted field.Elem
		weighted.MulSmall(&term, k[i])
		weighted.MulSmall(&weighted, mu[i])
		if signs[i] < 0 {
			weighted.Negate()
		}
		out[i] = weighted
	}
	out[0].Negate()
	return out
}

// bij computes the off-diagonal B_ij scalar for the pair (i, j), using
// the complementary pair (k, l) for the "3,4" role the specification's
// formula assigns to the other two coordinates.
func bij(p, q *kummer.Point, i, j int) field.Elem {
	pc := [4]field.Elem{p.X, p.Y, p.Z, p.T}
	qc := [4]field.Elem{q.X, q.Y, q.Z, q.T}
	mu := kummer.MuHat()

	var rest []int
	for idx := 0; idx < 4; idx++ {
		if idx != i && idx != j {
			rest = append(rest, idx)
		}
	}
	k, l := rest[0], rest[1]

	c1, c2, c3, c4 := mu[i], mu[j], mu[k], mu[l]

	var p1p2, p3p4, q1q2, q3q4 field.Elem
	p1p2.Mul(&pc[i], &pc[j])
	p3p4.Mul(&pc[k], &pc[l])
	q1q2.Mul(&qc[i], &qc[j])
	q3q4.Mul(&qc[k], &qc[l])

	var pDiff, qDiff field.Elem
	pDiff.Sub(&p1p2, &p3p4)
	qDiff.Sub(&q1q2, &q3q4)

	var part1 field.Elem
	part1.Mul(&pDiff, &qDiff)
	part1.MulSmall(&part1, c3)
	part1.MulSmall(&part1, c4)

	var part2, c3c4, c1c2 field.Elem
	part2.Mul(&p3p4, &q3q4)
	c3c4 = field.Elem{L0: uint32(c3) * uint32(c4)}
	c1c2 = field.Elem{L0: uint32(c1) * uint32(c2)}
	var sumC field.Elem
	sumC.Add(&c3c4, &c1c2)
	part2.Mul(&part2, &sumC)

	var res field.Elem
	res.Sub(&part1, &part2)
	res.MulSmall(&res, c1)
	res.MulSmall(&res, c2)

	c2c4 := uint32(c2) * uint32(c4)
	c1c3 := uint32(c1) * uint32(c3)
	c2c3 := uint32(c2) * uint32(c3)
	c1c4 := uint32(c1) * uint32(c4)

	var f1, f2 field.Elem
	f1 = field.Elem{L0: c2c4 + c1c3}
	f2 = field.Elem{L0: c2c3 + c1c4}
	res.Mul(&res, &f1)
	res.Mul(&res, &f2)

	// Negated for the (2,3), (2,4), (3,4) pairs in the specification's
	// 1-indexed numbering, i.e. every pair here that does not involve
	// index 0.
	if i != 0 {
		res.Negate()
	}
	return res
}

// qij evaluates the quadratic relation for pair (i, j): bjj*Ri^2 -
// 2*C*bij*Ri*Rj + bii*Rj^2.
func qij(bii, bjj, bijVal field.Elem, ri, rj field.Elem, c field.Elem) field.Elem {
	var ri2, rj2, term1, term2, term3 field.Elem
	ri2.Square(&ri)
	rj2.Square(&rj)

	term1.Mul(&bjj, &ri2)

	term2.Mul(&bijVal, &ri)
	term2.Mul(&term2, &rj)
	term2.Mul(&term2, &c)
	term2.MulSmall(&term2, 2)

	term3.Mul(&bii, &rj2)

	var sum field.Elem
	sum.Sub(&term1, &term2)
	sum.Add(&sum, &term3)
	return sum
}

// Check verifies that the decompression of rCompressed is the candidate
// point matching sP and hQ, per the six biquadratic relations.
func Check(sP, hQ *kummer.Point, rCompressed *kummer.CompressedPoint) error {
	p := kummer.H(sP)
	q := kummer.H(hQ)

	bii := biiVector(&p, &q)

	r, ok := kummer.Decompress(rCompressed)
	if !ok {
		return ErrFailed
	}
	r = kummer.H(&r)
	rc := [4]field.Elem{r.X, r.Y, r.Z, r.T}

	c := kummer.CurveC()

	for _, pr := range pairs {
		i, j := pr[0], pr[1]
		bijVal := bij(&p, &q, i, j)
		res := qij(bii[i], bii[j], bijVal, rc[i], rc[j], c)
		if !res.IsZero() {
			return ErrFailed
		}
	}
	return nil
}
