package qdsa

import "errors"

// ErrInvalid is returned by every qdsa operation that rejects its input:
// a malformed public key, a signature that fails verification, or a
// compressed point that does not decompress.
var ErrInvalid = errors.New("qdsa: invalid input")
