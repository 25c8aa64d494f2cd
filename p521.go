package ecsig

import (
	"crypto/ecdh"
	"crypto/elliptic"
)

var p521 = nistCurve{alg: ES512, curve: elliptic.P521(), ecdhCurve: ecdh.P521}

// SigningKeyP521 holds a P-521 private scalar and implements [Signer] for ES512.
type SigningKeyP521 struct {
	nistSigningKey
}

// VerifyingKeyP521 holds a P-521 public point and implements [Verifier] for ES512.
type VerifyingKeyP521 struct {
	nistVerifyingKey
}

var _ Signer = (*SigningKeyP521)(nil)
var _ Verifier = (*VerifyingKeyP521)(nil)

func NewSigningKeyP521FromPEM(pemText string, opts ...Option) (*SigningKeyP521, error) {
	o := resolveOptions(opts)
	k, err := p521.parseSigningKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP521{k}, nil
}

// NewSigningKeyP521FromBytes imports a P-521 private key from its 66-byte
// big-endian scalar encoding.
func NewSigningKeyP521FromBytes(raw []byte, opts ...Option) (*SigningKeyP521, error) {
	o := resolveOptions(opts)
	k, err := p521.parseSigningKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP521{k}, nil
}

func NewVerifyingKeyP521FromPEM(pemText string, opts ...Option) (*VerifyingKeyP521, error) {
	o := resolveOptions(opts)
	k, err := p521.parseVerifyingKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP521{k}, nil
}

func NewVerifyingKeyP521FromBytes(raw []byte, opts ...Option) (*VerifyingKeyP521, error) {
	o := resolveOptions(opts)
	k, err := p521.parseVerifyingKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP521{k}, nil
}
