//go:build !qdsa_verifieronly

package ladder

import (
	"github.com/qdsagolang/qdsa-gs/field"
	"github.com/qdsagolang/qdsa-gs/kummer"
)

// condSwap conditionally swaps p and q in constant time: every limb of
// both points is touched regardless of swap, via an XOR mask. This is
// the build used by signing and Diffie-Hellman, where the ladder's
// scalar is secret.
func condSwap(swap uint32, p, q *kummer.Point) {
	field.ConstantTimeSwap(swap, &p.X, &q.X)
	field.ConstantTimeSwap(swap, &p.Y, &q.Y)
	field.ConstantTimeSwap(swap, &p.Z, &q.Z)
	field.ConstantTimeSwap(swap, &p.T, &q.T)
}
