package ecsig

import (
	"crypto/ecdh"
	"crypto/elliptic"
)

var p384 = nistCurve{alg: ES384, curve: elliptic.P384(), ecdhCurve: ecdh.P384}

// SigningKeyP384 holds a P-384 private scalar and implements [Signer] for ES384.
type SigningKeyP384 struct {
	nistSigningKey
}

// VerifyingKeyP384 holds a P-384 public point and implements [Verifier] for ES384.
type VerifyingKeyP384 struct {
	nistVerifyingKey
}

var _ Signer = (*SigningKeyP384)(nil)
var _ Verifier = (*VerifyingKeyP384)(nil)

func NewSigningKeyP384FromPEM(pemText string, opts ...Option) (*SigningKeyP384, error) {
	o := resolveOptions(opts)
	k, err := p384.parseSigningKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP384{k}, nil
}

// NewSigningKeyP384FromBytes imports a P-384 private key from its 48-byte
// big-endian scalar encoding.
func NewSigningKeyP384FromBytes(raw []byte, opts ...Option) (*SigningKeyP384, error) {
	o := resolveOptions(opts)
	k, err := p384.parseSigningKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &SigningKeyP384{k}, nil
}

func NewVerifyingKeyP384FromPEM(pemText string, opts ...Option) (*VerifyingKeyP384, error) {
	o := resolveOptions(opts)
	k, err := p384.parseVerifyingKeyPEM(pemText, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP384{k}, nil
}

func NewVerifyingKeyP384FromBytes(raw []byte, opts ...Option) (*VerifyingKeyP384, error) {
	o := resolveOptions(opts)
	k, err := p384.parseVerifyingKeyBytes(raw, o.log)
	if err != nil {
		return nil, err
	}
	return &VerifyingKeyP384{k}, nil
}
