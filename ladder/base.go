// Package ladder implements the Montgomery-style 251-iteration
// differential ladder over Kummer points.
package ladder

import (
	"github.com/qdsagolang/qdsa-gs/field"
	"github.com/qdsagolang/qdsa-gs/kummer"
)

// neutral is the ladder's starting value for P, (mu_1, mu_2, mu_3, mu_4).
var neutral = kummer.Point{
	X: field.Elem{L0: 0x0b},
	Y: field.Elem{L0: 0x16},
	Z: field.Elem{L0: 0x13},
	T: field.Elem{L0: 0x03},
}

// baseWrapped is the hard-coded wrapped base point P used by
// ladder_base_250.
var baseWrapped = kummer.WrappedPoint{
	X: field.One,
	Y: field.Elem{L0: 0x4e931a48, L1: 0xaeb351a6, L2: 0x2049c2e7, L3: 0x1be0c3dc},
	Z: field.Elem{L0: 0xe07e36df, L1: 0x64659818, L2: 0x8eaba630, L3: 0x23b416cd},
	T: field.Elem{L0: 0x7215441e, L1: 0xc7ae3d05, L2: 0x4447a24d, L3: 0x5db35c38},
}

func bitAt(n []byte, i int) uint32 {
	return uint32(n[i>>3]>>uint(i&7)) & 1
}

// Ladder250 computes [n]Q (returned as p) and [n+1]Q (returned as q),
// given the uncompressed base point q and its wrapped difference d. n
// holds the scalar as a little-endian bit string; only bits 0..250 are
// read.
func Ladder250(q *kummer.Point, d *kummer.WrappedPoint, n []byte) (p, qOut kummer.Point) {
	p = neutral
	work := *q

	var prevBit uint32
	for i := 250; i >= 0; i-- {
		bit := bitAt(n, i)
		swap := bit ^ prevBit
		prevBit = bit

		work.X.Negate()

		condSwap(swap, &p, &work)

		kummer.XDblAdd(&p, &work, d)
	}

	p.X.Negate()
	condSwap(prevBit, &p, &work)

	return p, work
}

// LadderBase250 computes [n]P and [n+1]P where P is the hard-coded base
// point.
func LadderBase250(n []byte) (p, q kummer.Point) {
	base := kummer.Unwrap(&baseWrapped)
	return Ladder250(&base, &baseWrapped, n)
}
