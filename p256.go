package ecsig

import (
	"crypto/ecdh"
	"crypto/elliptic"
)

var p256 = nistCurve{alg: ES256, curve: elliptic.P256(), ecdhCurve: ecdh.P256}

// SigningKeyP256 holds a P-256 / secp256r1 private scalar and implements
// [Signer] for ES256.
type SigningKeyP256 struct {
	nistSigningKey
}

// VerifyingKeyP256 holds a P-256 / secp256r1 public point and implements
// [Verifier] for ES256.
type VerifyingKeyP256 struct {
	nistVerifyingKey
}

var _ Signer = (*SigningKeyP256)(nil)
var _ Verifier = (*VerifyingKeyP256)(nil)

// NewSigningKeyP256FromPEM imports a P-256 private key from SEC1 or PKCS8
// PEM text.
func NewSigningKeyP256FromPEM(pemText string, opts ...Option) (*SigningKeyP256, error) {
	o := resolveOptions(opts)
	k, err := p256.parseSigningKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP256{k}, nil
}

// NewSigningKeyP256FromBytes imports a P-256 private key from its 32-byte
// big-endian scalar encoding.
func NewSigningKeyP256FromBytes(raw []byte, opts ...Option) (*SigningKeyP256, error) {
	o := resolveOptions(opts)
	k, err := p256.parseSigningKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP256{k}, nil
}

// NewVerifyingKeyP256FromPEM imports a P-256 public key from standard
// public-key PEM text.
func NewVerifyingKeyP256FromPEM(pemText string, opts ...Option) (*VerifyingKeyP256, error) {
	o := resolveOptions(opts)
	k, err := p256.parseVerifyingKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP256{k}, nil
}

// NewVerifyingKeyP256FromBytes imports a P-256 public key from SEC1 point
// bytes, compressed or uncompressed.
func NewVerifyingKeyP256FromBytes(raw []byte, opts ...Option) (*VerifyingKeyP256, error) {
	o := resolveOptions(opts)
	k, err := p256.parseVerifyingKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP256{k}, nil
}
