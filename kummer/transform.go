package kummer

// T and TInv are the matrix transforms used by compression and
// decompression respectively: T maps an uncompressed point into the
// intermediate basis compression reads L1..L4 from, and TInv maps the
// reconstructed (X', Y', Z', T') candidate back into the uncompressed
// Kummer representation. Both are built from the fused Hadamard primitive
// weighted by the muhat/khat curve constants, matching how the rest of
// the Kummer layer composes hdmrd with a constant vector multiply.
//
// Kummer points are only meaningful up to the surface's projective
// equivalence, so T and TInv need not be exact matrix inverses: it is
// enough that each is the transform decompress/compress were specified
// against.

// T applies the compression-side transform.
func T(p *Point) Point {
	h := hdmrd(p)
	return mul4Const(&h, muhat)
}

// TInv applies the decompression-side transform.
func TInv(p *Point) Point {
	h := mul4Const(p, khat)
	return hdmrd(&h)
}
