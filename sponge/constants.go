package sponge

// roundConstants holds all 22 Keccak-f[800] round constants (the lane
// size is 32 bits, so each constant is the low 32 bits of the
// corresponding Keccak-f[1600] constant). Rounds selects how many of the
// final entries the permutation actually applies.
var roundConstants = [22]uint32{
	0x00000001, 0x00008082, 0x0000808A, 0x80008000,
	0x0000808B, 0x80000001, 0x80008081, 0x00008009,
	0x0000008A, 0x00000088, 0x80008009, 0x8000000A,
	0x8000808B, 0x0000008B, 0x00008089, 0x00008003,
	0x00008002, 0x00000080, 0x0000800A, 0x8000000A,
	0x80008081, 0x00008080,
}

// Rounds is the number of rounds BobJr actually runs: the final Rounds
// entries of roundConstants, i.e. rounds 12..21 of the full 22.
const Rounds = 10

// rhoOffsets[x][y] is the left-rotation amount Rho applies to lane
// (x, y). It is built from the Keccak reference's rotation-offset
// sequence, walked along the standard lane traversal (x, y) -> (y, 2x+3y
// mod 5) starting from (1, 0).
var rhoOffsets [5][5]int

func init() {
	offsets := [24]int{
		1, 3, 6, 10, 15, 21, 28, 4, 13, 23, 2, 14,
		27, 9, 24, 8, 25, 11, 30, 18, 7, 29, 20, 12,
	}
	x, y := 1, 0
	for _, off := range offsets {
		rhoOffsets[x][y] = off
		x, y = y, (2*x+3*y)%5
	}
}
