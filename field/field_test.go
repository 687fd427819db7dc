package field

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func genElem() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		r := genParams.Rng
		e := Elem{
			L0: r.Uint32(),
			L1: r.Uint32(),
			L2: r.Uint32(),
			L3: r.Uint32() & 0x7FFFFFFF, // keep well under 2p
		}
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestFreezeCanonical(t *testing.T) {
	assert := require.New(t)

	var x Elem
	x.Freeze()
	assert.True(x.IsZero())

	// p itself freezes to 0.
	p := Elem{L0: 0xFFFFFFFF, L1: 0xFFFFFFFF, L2: 0xFFFFFFFF, L3: 0x7FFFFFFF}
	p.Freeze()
	assert.True(p.IsZero())
}

func TestAddSubRoundTrip(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 256; i++ {
		x := Elem{L0: rnd.Uint32(), L1: rnd.Uint32(), L2: rnd.Uint32(), L3: rnd.Uint32() & 0x7FFFFFFF}
		y := Elem{L0: rnd.Uint32(), L1: rnd.Uint32(), L2: rnd.Uint32(), L3: rnd.Uint32() & 0x7FFFFFFF}

		var s, b Elem
		s.Add(&x, &y)
		b.Sub(&s, &y)
		assert.True(b.Equal(x), "iteration %d", i)
	}
}

func TestMulInvertIsOne(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(2))

	for i := 0; i < 64; i++ {
		x := Elem{L0: rnd.Uint32(), L1: rnd.Uint32(), L2: rnd.Uint32(), L3: rnd.Uint32() & 0x7FFFFFFF}
		if x.IsZero() {
			continue
		}
		var inv, prod Elem
		inv.Invert(&x)
		prod.Mul(&x, &inv)
		assert.True(prod.Equal(One), "iteration %d", i)
	}
}

func TestSquareEqualsMulSelf(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 64; i++ {
		x := Elem{L0: rnd.Uint32(), L1: rnd.Uint32(), L2: rnd.Uint32(), L3: rnd.Uint32() & 0x7FFFFFFF}
		var sq, mulSelf Elem
		sq.Square(&x)
		mulSelf.Mul(&x, &x)
		assert.True(sq.Equal(mulSelf), "iteration %d", i)
	}
}

func TestHasSqrtRoundTrip(t *testing.T) {
	assert := require.New(t)
	rnd := rand.New(rand.NewSource(4))

	for i := 0; i < 64; i++ {
		x := Elem{L0: rnd.Uint32(), L1: rnd.Uint32(), L2: rnd.Uint32(), L3: rnd.Uint32() & 0x7FFFFFFF}
		if x.IsZero() {
			continue
		}
		var delta Elem
		delta.Square(&x) // always a QR

		var root Elem
		ok := HasSqrt(&root, &delta, 0)
		assert.True(ok, "iteration %d", i)

		var check Elem
		check.Square(&root)
		assert.True(check.Equal(delta), "iteration %d", i)
		assert.Equal(uint32(0), root.L0&1)
	}
}

// TestHadamardInvolutionUpToScale checks the actual algebraic identity of
// the fused "negate x0, Hadamard, negate result[3]" primitive composed with
// itself: applying it twice is linear, and working out that 4x4 matrix
// squared shows Hadamard(Hadamard(x)) = -4 * reverse(x) (coordinates
// reversed, then every entry negated and scaled by 4). Composing the
// involution with itself is what exercises every sign in the primitive at
// once, unlike calling Hadamard on the same input twice and comparing the
// two (identical) results, which only shows determinism.
func TestHadamardInvolutionUpToScale(t *testing.T) {
	assert := require.New(t)

	in := [4]Elem{{L0: 1}, {L0: 2}, {L0: 3}, {L0: 4}}
	var once, twice [4]Elem
	Hadamard(&once, &in)
	Hadamard(&twice, &once)

	for i := 0; i < 4; i++ {
		want := in[3-i]
		want.MulSmall(&want, 4)
		want.Negate()
		assert.True(twice[i].Equal(want), "coordinate %d: got %+v want %+v", i, twice[i], want)
	}
}

func TestHadamardInvolutionUpToScaleProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Hadamard(Hadamard(x)) == -4*reverse(x)", prop.ForAll(
		func(x0, x1, x2, x3 Elem) bool {
			in := [4]Elem{x0, x1, x2, x3}
			var once, twice [4]Elem
			Hadamard(&once, &in)
			Hadamard(&twice, &once)

			for i := 0; i < 4; i++ {
				want := in[3-i]
				want.MulSmall(&want, 4)
				want.Negate()
				if !twice[i].Equal(want) {
					return false
				}
			}
			return true
		},
		genElem(), genElem(), genElem(), genElem(),
	))

	properties.TestingRun(t)
}

func properties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("freeze is idempotent", prop.ForAll(
		func(x Elem) bool {
			a := x
			a.Freeze()
			b := a
			b.Freeze()
			return a == b
		},
		genElem(),
	))

	properties.Property("mul is commutative", prop.ForAll(
		func(x, y Elem) bool {
			var xy, yx Elem
			xy.Mul(&x, &y)
			yx.Mul(&y, &x)
			return xy.Equal(yx)
		},
		genElem(), genElem(),
	))

	properties.Property("add is associative", prop.ForAll(
		func(x, y, z Elem) bool {
			var xy, xyz1 Elem
			xy.Add(&x, &y)
			xyz1.Add(&xy, &z)

			var yz, xyz2 Elem
			yz.Add(&y, &z)
			xyz2.Add(&x, &yz)
			return xyz1.Equal(xyz2)
		},
		genElem(), genElem(), genElem(),
	))

	return properties
}

func TestFieldProperties(t *testing.T) {
	properties().TestingRun(t)
}
