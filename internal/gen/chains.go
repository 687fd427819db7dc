// Command gen drives the build-time generators this module uses instead of
// hand-duplicating mechanical code: the Kummer layer's coordinatewise
// helpers (via bavard templates) and a cross-check of the field layer's two
// fixed addition chains (via addchain), mirroring how the teacher's own
// upstream (gnark-crypto) drives its field-chain and curve-arithmetic
// generation instead of typing it out by hand. Nothing under internal/gen
// is imported by the library; it is invoked only through go:generate.
package main

import (
	"fmt"
	"math/big"

	"github.com/mmcloughlin/addchain"
)

// chainBuilder accumulates an addchain.Chain one valid step at a time:
// every value appended is either a doubling of a value already in the
// chain or the sum of two values already in the chain, which is exactly
// what addchain.Chain.Validate checks.
type chainBuilder struct {
	chain addchain.Chain
}

func newChainBuilder() *chainBuilder {
	return &chainBuilder{chain: addchain.Chain{big.NewInt(1)}}
}

func (b *chainBuilder) add(v *big.Int) *big.Int {
	b.chain = append(b.chain, v)
	return v
}

// double appends v+v to the chain n times in a row, returning the final
// value (the exponent-doubling step field/exp.go's sqmul performs via
// repeated Square calls).
func (b *chainBuilder) double(v *big.Int, n int) *big.Int {
	cur := v
	for i := 0; i < n; i++ {
		cur = b.add(new(big.Int).Add(cur, cur))
	}
	return cur
}

// plus appends a+c to the chain (the "multiply by the composed
// accumulator" half of sqmul).
func (b *chainBuilder) plus(a, c *big.Int) *big.Int {
	return b.add(new(big.Int).Add(a, c))
}

// buildChain2to125 walks the exact sequence of squarings and multiplies
// field/exp.go's chain2to125 performs, expressed as exponent arithmetic: a
// Square corresponds to doubling the exponent, a Mul to adding exponents.
// Reproducing every intermediate doubling step (not just the named
// checkpoints x3/x15/x31/...) is what lets addchain.Chain.Validate confirm
// this is a genuine addition chain and not just a list of correct totals.
func buildChain2to125() (addchain.Chain, *big.Int) {
	one := big.NewInt(1)
	b := newChainBuilder()

	x2 := b.double(one, 1)
	x3 := b.plus(x2, one) // x^3 = 2^2-1
	x6 := b.double(x3, 1)
	x12 := b.double(x6, 1)
	x15 := b.plus(x12, x3) // x^15 = 2^4-1

	x30 := b.double(x15, 1)
	x31 := b.plus(x30, one) // 2^5-1

	x992 := b.double(x31, 5)
	x1023 := b.plus(x992, x31) // 2^10-1

	x1047552 := b.double(x1023, 10)
	x1048575 := b.plus(x1047552, x1023) // 2^20-1

	a40 := b.double(x1048575, 20)
	x2to40 := b.plus(a40, x1048575) // 2^40-1

	a80 := b.double(x2to40, 40)
	x2to80 := b.plus(a80, x2to40) // 2^80-1

	a120 := b.double(x2to80, 40)
	x2to120 := b.plus(a120, x2to40) // 2^120-1

	a124 := b.double(x2to120, 4)
	x2to124 := b.plus(a124, x15) // 2^124-1

	a125 := b.double(x2to124, 1)
	x2to125 := b.plus(a125, one) // 2^125-1

	return b.chain, x2to125
}

// pMinus3Over4 is the exponent field.PowMinusQuarter's chain must reach:
// (p-3)/4 = 2^125-1 for p = 2^127-1.
func pMinus3Over4() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 125), big.NewInt(1))
}

// pMinus2 is the exponent field.Invert effectively reaches: p-2 = 2^127-3.
func pMinus2() *big.Int {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	return p.Sub(p, big.NewInt(2))
}

func checkChains() error {
	chain, x125 := buildChain2to125()
	if err := chain.Validate(); err != nil {
		return fmt.Errorf("chain2to125: invalid addition chain: %w", err)
	}
	if x125.Cmp(pMinus3Over4()) != 0 {
		return fmt.Errorf("chain2to125: reaches %s, want (p-3)/4 = %s", x125, pMinus3Over4())
	}

	// field.Invert squares the 2^125-1 accumulator twice more (*4) and
	// multiplies by x once more (+1): 4*(2^125-1)+1 = 2^127-3 = p-2.
	invertExp := new(big.Int).Mul(x125, big.NewInt(4))
	invertExp.Add(invertExp, big.NewInt(1))
	if invertExp.Cmp(pMinus2()) != 0 {
		return fmt.Errorf("Invert: derived exponent %s, want p-2 = %s", invertExp, pMinus2())
	}
	return nil
}

func main() {
	if err := checkChains(); err != nil {
		panic(err)
	}
	if err := generateKummerCoordwise(); err != nil {
		panic(err)
	}
}
