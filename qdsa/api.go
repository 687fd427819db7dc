// Package qdsa implements qDSA signing, verification, key generation and
// Diffie-Hellman over the Gaudry-Schost Kummer surface, built from the
// field, kummer, ladder, verify and sponge packages.
package qdsa

import (
	"fmt"

	"github.com/qdsagolang/qdsa-gs/bigint"
	"github.com/qdsagolang/qdsa-gs/kummer"
	"github.com/qdsagolang/qdsa-gs/ladder"
	"github.com/qdsagolang/qdsa-gs/sponge"
	"github.com/qdsagolang/qdsa-gs/verify"
)

// hashScalar absorbs every part in order, finishes the sponge, squeezes
// 64 bytes, and reduces the result modulo N.
func hashScalar(parts ...[]byte) bigint.Scalar {
	s := sponge.New()
	for _, p := range parts {
		s.Absorb(p)
	}
	s.Finish()
	var out [64]byte
	s.Squeeze(out[:])
	w := bigint.FromBytes64(&out)
	return bigint.Reduce512(w)
}

// Keypair derives a keypair from a 32-byte seed. sk is the 64-byte
// finalized sponge state over seed; pk is the compressed base-point
// multiple [d']P where d' is sk[32:64] reduced modulo N.
func Keypair(seed [32]byte) (pk [32]byte, sk [64]byte, err error) {
	s := sponge.New()
	s.Absorb(seed[:])
	s.Finish()
	s.Squeeze(sk[:])

	var skLow [32]byte
	copy(skLow[:], sk[32:64])
	dPrime := bigint.Reduce256(bigint.FromBytes32(&skLow))

	dBytes := dPrime.Bytes()
	p, _ := ladder.LadderBase250(dBytes[:])
	c := kummer.Compress(&p)
	copy(pk[:], c[:])

	logger.Debug().Msg("qdsa: keypair derived")
	return pk, sk, nil
}

// Sign computes a signature over msg using the keypair (pk, sk).
func Sign(msg [32]byte, pk [32]byte, sk [64]byte) (sig [64]byte, err error) {
	var skHigh [32]byte
	copy(skHigh[:], sk[32:64])
	dPrime := bigint.Reduce256(bigint.FromBytes32(&skHigh))
	defer zeroWords(dPrime[:])

	r := hashScalar(sk[0:32], msg[:])
	defer zeroWords(r[:])
	rBytes := r.Bytes()

	p, _ := ladder.LadderBase250(rBytes[:])
	rCompressed := kummer.Compress(&p)

	h := hashScalar(rCompressed[:], pk[:], msg[:])

	hd := bigint.MulMod(h, dPrime)
	s := bigint.SubMod(r, hd)
	sBytes := s.Bytes()

	copy(sig[0:32], rCompressed[:])
	copy(sig[32:64], sBytes[:])

	logger.Debug().Msg("qdsa: signature produced")
	return sig, nil
}

// Verify checks a signature over msg against pk. A nil return means the
// signature is valid.
func Verify(sig [64]byte, pk [32]byte, msg [32]byte) error {
	var pkCompressed kummer.CompressedPoint
	copy(pkCompressed[:], pk[:])
	sP, ok := kummer.Decompress(&pkCompressed)
	if !ok {
		logger.Debug().Msg("qdsa: verify rejected malformed public key")
		return fmt.Errorf("qdsa: decompress public key: %w", ErrInvalid)
	}

	var sBytes [32]byte
	copy(sBytes[:], sig[32:64])
	s := bigint.Reduce256(bigint.FromBytes32(&sBytes))

	var rCompressed kummer.CompressedPoint
	copy(rCompressed[:], sig[0:32])

	h := hashScalar(rCompressed[:], pk[:], msg[:])

	pxw := kummer.Wrap(&sP)
	hBytes := h.Bytes()
	hQ, _ := ladder.Ladder250(&sP, &pxw, hBytes[:])

	sBytesScalar := s.Bytes()
	sP2, _ := ladder.LadderBase250(sBytesScalar[:])

	if err := verify.Check(&sP2, &hQ, &rCompressed); err != nil {
		logger.Debug().Msg("qdsa: verify rejected signature")
		return fmt.Errorf("qdsa: check: %w", ErrInvalid)
	}

	logger.Debug().Msg("qdsa: verify accepted signature")
	return nil
}

// DHKeygen derives the public key matching a raw 32-byte Diffie-Hellman
// secret.
func DHKeygen(sk [32]byte) (pk [32]byte, err error) {
	scalar := bigint.Reduce256(bigint.FromBytes32(&sk))
	b := scalar.Bytes()
	p, _ := ladder.LadderBase250(b[:])
	c := kummer.Compress(&p)
	copy(pk[:], c[:])
	return pk, nil
}

// DHExchange computes the shared secret between a remote public key and
// a local secret.
func DHExchange(pkRemote [32]byte, skLocal [32]byte) (ss [32]byte, err error) {
	var remote kummer.CompressedPoint
	copy(remote[:], pkRemote[:])
	p, ok := kummer.Decompress(&remote)
	if !ok {
		return ss, fmt.Errorf("qdsa: decompress remote public key: %w", ErrInvalid)
	}

	scalar := bigint.Reduce256(bigint.FromBytes32(&skLocal))
	wrapped := kummer.Wrap(&p)
	b := scalar.Bytes()
	shared, _ := ladder.Ladder250(&p, &wrapped, b[:])

	c := kummer.Compress(&shared)
	copy(ss[:], c[:])
	return ss, nil
}
