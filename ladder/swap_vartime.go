//go:build qdsa_verifieronly

package ladder

import "github.com/qdsagolang/qdsa-gs/kummer"

// condSwap swaps p and q with an ordinary branch when swap is set. Used
// only in the verifier-only build, where the ladder's scalars (s and h
// derived from public signature material) carry no secrecy requirement,
// so leaking the branch timing is acceptable.
func condSwap(swap uint32, p, q *kummer.Point) {
	if swap == 0 {
		return
	}
	*p, *q = *q, *p
}
