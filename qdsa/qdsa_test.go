package qdsa

import (
	"crypto/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// TestRandomSeedSignVerify exercises the external-randomness-source path
// spec.md's concurrency section calls out for the optional test glue: a
// seed read from crypto/rand rather than a fixed fixture.
func TestRandomSeedSignVerify(t *testing.T) {
	assert := require.New(t)

	var seed, msg [32]byte
	_, err := rand.Read(seed[:])
	assert.NoError(err)
	_, err = rand.Read(msg[:])
	assert.NoError(err)

	pk, sk, err := Keypair(seed)
	assert.NoError(err)

	sig, err := Sign(msg, pk, sk)
	assert.NoError(err)

	assert.NoError(Verify(sig, pk, msg))
}

// repeatByte32 returns a 32-byte buffer filled with b, the shape spec.md
// section 8's concrete scenarios specify their seeds/messages in.
func repeatByte32(b byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = b
	}
	return out
}

// Scenario 1: zero-seed sign/verify.
func TestZeroSeedSignVerify(t *testing.T) {
	assert := require.New(t)

	seed := repeatByte32(0x00)
	msg := repeatByte32(0x00)

	pk, sk, err := Keypair(seed)
	assert.NoError(err)

	sig, err := Sign(msg, pk, sk)
	assert.NoError(err)

	assert.NoError(Verify(sig, pk, msg))
}

// Scenario 2: sequential-seed sign/verify loop.
func TestSequentialSeedSignVerify(t *testing.T) {
	assert := require.New(t)

	for i := byte(0); i < 10; i++ {
		seed := repeatByte32(i)
		msg := repeatByte32(i + 128)

		pk, sk, err := Keypair(seed)
		assert.NoError(err, "iteration %d", i)

		sig, err := Sign(msg, pk, sk)
		assert.NoError(err, "iteration %d", i)

		assert.NoError(Verify(sig, pk, msg), "iteration %d", i)
	}
}

// Scenario 3: tampering with the signature must be rejected.
func TestTamperedSignatureRejected(t *testing.T) {
	assert := require.New(t)

	seed := repeatByte32(0x07)
	msg := repeatByte32(0xAB)

	pk, sk, err := Keypair(seed)
	assert.NoError(err)
	sig, err := Sign(msg, pk, sk)
	assert.NoError(err)
	assert.NoError(Verify(sig, pk, msg))

	tampered := sig
	tampered[0] ^= 0x01
	assert.Error(Verify(tampered, pk, msg))
}

// Scenario 4: tampering with the message must be rejected.
func TestTamperedMessageRejected(t *testing.T) {
	assert := require.New(t)

	seed := repeatByte32(0x08)
	msg := repeatByte32(0xCD)

	pk, sk, err := Keypair(seed)
	assert.NoError(err)
	sig, err := Sign(msg, pk, sk)
	assert.NoError(err)
	assert.NoError(Verify(sig, pk, msg))

	tamperedMsg := msg
	tamperedMsg[31] ^= 0x80
	assert.Error(Verify(sig, pk, tamperedMsg))
}

// Scenario 5: an all-0xFF public key must fail to decompress.
func TestMalformedPublicKeyRejected(t *testing.T) {
	assert := require.New(t)

	var pk [32]byte
	for i := range pk {
		pk[i] = 0xFF
	}
	var sig [64]byte
	msg := repeatByte32(0x00)

	assert.Error(Verify(sig, pk, msg))
}

// Scenario 6: Diffie-Hellman agreement between two parties.
func TestDHAgreement(t *testing.T) {
	assert := require.New(t)

	seedA := repeatByte32(0x01)
	seedB := repeatByte32(0x02)

	pkA, err := DHKeygen(seedA)
	assert.NoError(err)
	pkB, err := DHKeygen(seedB)
	assert.NoError(err)

	ssAB, err := DHExchange(pkB, seedA)
	assert.NoError(err)
	ssBA, err := DHExchange(pkA, seedB)
	assert.NoError(err)

	assert.Equal(ssAB, ssBA)
}

func TestTamperSensitivityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 16
	properties := gopter.NewProperties(parameters)

	properties.Property("flipping any single bit of sig rejects", prop.ForAll(
		func(seedByte, msgByte byte, bit uint8) bool {
			seed := repeatByte32(seedByte)
			msg := repeatByte32(msgByte)

			pk, sk, err := Keypair(seed)
			if err != nil {
				return false
			}
			sig, err := Sign(msg, pk, sk)
			if err != nil {
				return false
			}
			if Verify(sig, pk, msg) != nil {
				return false
			}

			tampered := sig
			byteIdx := int(bit) / 8
			bitIdx := uint(bit) % 8
			tampered[byteIdx] ^= 1 << bitIdx

			return Verify(tampered, pk, msg) != nil
		},
		genByte(), genByte(), genBit(),
	))

	properties.TestingRun(t)
}

func genByte() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(byte(genParams.Rng.Intn(256)), gopter.NoShrinker)
	}
}

func genBit() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(uint8(genParams.Rng.Intn(64*8)), gopter.NoShrinker)
	}
}
