package qdsa

import "github.com/rs/zerolog"

// logger is silent by default; callers that want visibility into
// verify/sign/keypair decisions call SetLogger. The DH functions do not log.
var logger = zerolog.Nop()

// SetLogger installs l as the package-wide debug logger. Passing
// zerolog.Nop() restores the default silence.
func SetLogger(l zerolog.Logger) {
	logger = l
}
