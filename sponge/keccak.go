package sponge

import "math/bits"

func rotl32(x uint32, n int) uint32 {
	if n == 0 {
		return x
	}
	return bits.RotateLeft32(x, n)
}

// round applies one Keccak-f[800] round (Theta, Rho+Pi, Chi, Iota) to A.
func round(a *[5][5]uint32, rc uint32) {
	var c, d [5]uint32
	for x := 0; x < 5; x++ {
		c[x] = a[x][0] ^ a[x][1] ^ a[x][2] ^ a[x][3] ^ a[x][4]
	}
	for x := 0; x < 5; x++ {
		d[x] = c[(x+4)%5] ^ rotl32(c[(x+1)%5], 1)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			a[x][y] ^= d[x]
		}
	}

	var b [5][5]uint32
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[y][(2*x+3*y)%5] = rotl32(a[x][y], rhoOffsets[x][y])
		}
	}

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			a[x][y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
		}
	}

	a[0][0] ^= rc
}

// permute runs BobJr's reduced-round Keccak-f[800] permutation on the 25
// 32-bit lanes given in little-endian row-major (x + 5*y) order.
func permute(lanes *[25]uint32) {
	var a [5][5]uint32
	for i := 0; i < 25; i++ {
		a[i%5][i/5] = lanes[i]
	}

	start := len(roundConstants) - Rounds
	for r := 0; r < Rounds; r++ {
		round(&a, roundConstants[start+r])
	}

	for i := 0; i < 25; i++ {
		lanes[i] = a[i%5][i/5]
	}
}
