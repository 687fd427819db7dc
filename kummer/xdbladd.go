package kummer

// XDblAdd performs one step of the differential add-double: given P, Q and
// D (the wrapped difference Q - P, held fixed across ladder iterations),
// it updates P and Q in place to [2]P and P+Q respectively (up to the
// overall Kummer sign convention), following the seven-step sequence
// fixed by the specification. The step order matters: Q's update at step 2
// must read P's pre-doubling value, so P is not overwritten until after Q
// has consumed it.
func XDblAdd(p, q *Point, d *WrappedPoint) {
	// 1. P <- H(P), Q <- H(Q)
	hp := hdmrd(p)
	hq := hdmrd(q)

	// 2. Q <- mul4(Q, P); P <- sqr4(P)  (Q's update reads the pre-square P)
	qNext := mul4(&hq, &hp)
	pNext := sqr4(&hp)

	// 3. Q <- mul4_const(Q, ehat); P <- mul4_const(P, ehat)
	qNext = mul4Const(&qNext, ehat)
	pNext = mul4Const(&pNext, ehat)

	// 4. Q <- H(Q); P <- H(P)
	qNext = hdmrd(&qNext)
	pNext = hdmrd(&pNext)

	// 5. Q <- sqr4(Q); P <- sqr4(P)
	qNext = sqr4(&qNext)
	pNext = sqr4(&pNext)

	// 6. Q.Y <- Q.Y*D.Y; Q.Z <- Q.Z*D.Z; Q.T <- Q.T*D.T
	qNext.Y.Mul(&qNext.Y, &d.Y)
	qNext.Z.Mul(&qNext.Z, &d.Z)
	qNext.T.Mul(&qNext.T, &d.T)

	// 7. P <- mul4_const(P, e_cons)
	pNext = mul4Const(&pNext, eCons)

	*p = pNext
	*q = qNext
}
