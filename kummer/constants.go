package kummer

//go:generate go run ../internal/gen

import "github.com/qdsagolang/qdsa-gs/field"

// Curve data for the Gaudry-Schost Kummer surface. These tables are
// immutable compile-time constants, not derived at runtime.

// ehat is the per-coordinate constant used by the first mul4_const step of
// xDBLADD.
var ehat = [4]uint32{0x341, 0x9C3, 0x651, 0x231}

// eCons is the per-coordinate constant used by the final mul4_const step of
// xDBLADD (applied to P only).
var eCons = [4]uint32{0x72, 0x39, 0x42, 0x1a2}

// muhat is the per-coordinate constant used by the matrix transform T and
// by the verify package's biquadratic forms. mu holds the coordinates
// (mu_1, mu_2, mu_3, mu_4) of the neutral element; the ladder package's
// starting point carries the same values.
var muhat = [4]uint32{0x0021, 0x000B, 0x0011, 0x0031}
var mu = [4]uint32{0x0b, 0x16, 0x13, 0x03}

// khat is the per-coordinate constant used by T_inv. k1234 holds k1..k4,
// used by the verify package's B_ii vector.
var khat = [4]uint32{0x3C1, 0x80, 0x239, 0x449}
var k1234 = [4]uint32{0x1259, 0x173F, 0x1679, 0x07C7}

// q0..q7 parameterize the k2/k3/k4 polynomials used by compression and
// decompression.
var q = [8]uint32{0xDF7, 0x2599, 0x1211, 0x2FE3, 0x2C0B, 0x1D33, 0x1779, 0xABD7}

// curveC is the fixed field constant used by the quadratic relation check
// in the verify package, loaded little-endian from the 16 bytes
// 0x43,0xA8,0xDD,0xCD, 0xD8,0xE3,0xF7,0x46, 0xDD,0xA2,0x20,0xA3,
// 0xEF,0x0E,0xF5,0x40.
var curveC = field.Elem{
	L0: 0xCDDDA843,
	L1: 0x46F7E3D8,
	L2: 0xA320A2DD,
	L3: 0x40F50EEF,
}

// CurveC returns the fixed curve constant C used by the verify package's
// quadratic-relation check.
func CurveC() field.Elem { return curveC }

// K1234 returns the k1..k4 constants used by the B_ii vector.
func K1234() [4]uint32 { return k1234 }

// MuHat returns the muhat constants used by the B_ii vector's weighting
// and by the T transform.
func MuHat() [4]uint32 { return muhat }
