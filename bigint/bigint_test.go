package bigint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomScalar(rnd *rand.Rand) Scalar {
	var s Scalar
	for i := range s {
		s[i] = rnd.Uint32()
	}
	return Reduce256(s)
}

func TestReduceIsCanonical(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(10))

	for i := 0; i < 256; i++ {
		var w Wide
		for j := range w {
			w[j] = rnd.Uint32()
		}
		s := Reduce512(w)
		assert.True(lessN(s), "iteration %d not reduced below N", i)
	}
}

func lessN(s Scalar) bool {
	for i := 7; i >= 0; i-- {
		if s[i] != N[i] {
			return s[i] < N[i]
		}
	}
	return false // equal to N is not canonical
}

func TestReduceIsIdempotent(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(11))

	for i := 0; i < 64; i++ {
		s := randomScalar(rnd)
		again := Reduce256(s)
		assert.Equal(s, again, "iteration %d", i)
	}
}

func TestNegateRoundTrip(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(12))

	for i := 0; i < 64; i++ {
		x := randomScalar(rnd)
		neg := Negate(x)
		sum := AddMod(x, neg)
		assert.True(isZeroScalar(sum), "iteration %d: x + (-x) != 0", i)
	}
}

func TestMulModDistributesOverAdd(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(13))

	for i := 0; i < 64; i++ {
		a := randomScalar(rnd)
		b := randomScalar(rnd)
		c := randomScalar(rnd)

		lhs := MulMod(a, AddMod(b, c))
		rhs := AddMod(MulMod(a, b), MulMod(a, c))
		assert.Equal(lhs, rhs, "iteration %d", i)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(14))

	for i := 0; i < 32; i++ {
		x := randomScalar(rnd)
		b := x.Bytes()
		back := FromBytes32(&b)
		assert.Equal(x, back, "iteration %d", i)
	}
}
