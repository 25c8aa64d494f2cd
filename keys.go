package ecsig

import (
	"encoding/base64"
	"log/slog"
)

// Signer is the capability contract for key types holding a private scalar.
// Sign hashes message with the key's curve hash, signs the digest, and
// returns the signature as URL-safe base64 without padding. The alg tag is
// metadata attached to the call; the key's own curve governs the operation.
type Signer interface {
	Sign(message []byte, alg Algorithm) (string, error)
}

// Verifier is the capability contract for key types holding a public point.
// Verify returns (true, nil) when the signature checks out, (false, nil)
// when the signature is cryptographically rejected, and a non-nil error
// only when verification could not run (bad encoding or structure).
type Verifier interface {
	Verify(message []byte, encodedSig string, alg Algorithm) (bool, error)
}

// Logger receives one diagnostic line per internal failure. Implementations
// must not assume the message is safe to persist verbatim, but this package
// never passes key material through it.
type Logger interface {
	Error(msg string)
}

type slogLogger struct{}

func (slogLogger) Error(msg string) {
	slog.Error(msg)
}

// Option configures key construction.
type Option func(*options)

type options struct {
	log Logger
}

// WithLogger injects the diagnostic logger used by the key for import and
// sign/verify failures. The default logs through log/slog.
func WithLogger(l Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func resolveOptions(opts []Option) options {
	o := options{log: slogLogger{}}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Signatures travel as URL-safe base64 (RFC 4648 §5) without padding.
func encodeSignature(sig []byte) string {
	return base64.RawURLEncoding.EncodeToString(sig)
}

func decodeSignature(encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, newError(KindDecoding, "signature is not valid url-safe base64")
	}
	return raw, nil
}
