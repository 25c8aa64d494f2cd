package ecsig

import "fmt"

// ErrorKind identifies one failure class in the closed error taxonomy.
// Every fallible operation in this package returns an *Error carrying
// exactly one of these kinds.
type ErrorKind string

const (
	// KindECPEM: PEM text failed to parse as a SEC1 or PKCS8 key structure.
	KindECPEM ErrorKind = "EC_PEM_ERROR"
	// KindPrivateKeyIdentification: a parsed or supplied scalar could not be
	// converted into a valid signing key for the curve.
	KindPrivateKeyIdentification ErrorKind = "PRIVATE_KEY_IDENTIFICATION_ERROR"
	// KindPublicKeyIdentification: raw bytes or a PEM-derived point could not
	// be converted into a valid verifying key for the curve.
	KindPublicKeyIdentification ErrorKind = "PUBLIC_KEY_IDENTIFICATION_ERROR"
	// KindSigningFailed: the underlying curve signing operation failed.
	KindSigningFailed ErrorKind = "SIGNING_FAILED"
	// KindDecoding: the supplied signature string is not valid base64.
	KindDecoding ErrorKind = "DECODING_ERROR"
	// KindSignatureIdentification: decoded signature bytes are not a
	// structurally valid signature for the curve.
	KindSignatureIdentification ErrorKind = "SIGNATURE_IDENTIFICATION_FAILED"
	// KindUnknownAlgorithm: the requested algorithm tag is not supported.
	KindUnknownAlgorithm ErrorKind = "UNKNOWN_ALGORITHM"
)

// Error is the typed error returned by every fallible operation.
// Detail describes the failure structurally; it never contains key material.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is reports kind equality, so errors.Is(err, &Error{Kind: k}) and the
// package sentinels below match any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrECPEM                    = &Error{Kind: KindECPEM}
	ErrPrivateKeyIdentification = &Error{Kind: KindPrivateKeyIdentification}
	ErrPublicKeyIdentification  = &Error{Kind: KindPublicKeyIdentification}
	ErrSigningFailed            = &Error{Kind: KindSigningFailed}
	ErrDecoding                 = &Error{Kind: KindDecoding}
	ErrSignatureIdentification  = &Error{Kind: KindSignatureIdentification}
	ErrUnknownAlgorithm         = &Error{Kind: KindUnknownAlgorithm}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
