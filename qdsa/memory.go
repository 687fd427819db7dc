package qdsa

// copyWords copies min(len(dst), len(src)) words from src to dst.
func copyWords(dst, src []uint32) {
	copy(dst, src)
}

// zeroWords overwrites every word of dst with zero.
func zeroWords(dst []uint32) {
	for i := range dst {
		dst[i] = 0
	}
}

// swapWords exchanges the contents of a and b, which must be the same
// length.
func swapWords(a, b []uint32) {
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}
