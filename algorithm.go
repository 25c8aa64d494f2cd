package ecsig

import (
	"crypto"
	"crypto/sha256"
	"crypto/sha512"
)

// Algorithm identifies a supported ECDSA signature algorithm. The values
// follow JOSE naming and are used purely as routing keys; curve parameters
// live in the registry below.
type Algorithm string

const (
	ES256  Algorithm = "ES256"  // ECDSA over P-256 with SHA-256
	ES384  Algorithm = "ES384"  // ECDSA over P-384 with SHA-384
	ES512  Algorithm = "ES512"  // ECDSA over P-521 with SHA-512
	ES256K Algorithm = "ES256K" // ECDSA over secp256k1 with SHA-256
)

// curveParams holds the per-curve constants attached to an algorithm tag.
type curveParams struct {
	name       string // curve display name
	hash       crypto.Hash
	scalarSize int // private scalar length in bytes
	sigSize    int // fixed r || s signature length in bytes
}

var algorithmRegistry = map[Algorithm]curveParams{
	ES256:  {name: "P-256/secp256r1", hash: crypto.SHA256, scalarSize: 32, sigSize: 64},
	ES384:  {name: "P-384/secp384r1", hash: crypto.SHA384, scalarSize: 48, sigSize: 96},
	ES512:  {name: "P-521/secp521r1", hash: crypto.SHA512, scalarSize: 66, sigSize: 132},
	ES256K: {name: "secp256k1", hash: crypto.SHA256, scalarSize: 32, sigSize: 64},
}

// Algorithms returns the closed set of supported algorithm tags.
func Algorithms() []Algorithm {
	return []Algorithm{ES256, ES384, ES512, ES256K}
}

// Supported reports whether a is one of the four supported algorithms.
func (a Algorithm) Supported() bool {
	_, ok := algorithmRegistry[a]
	return ok
}

func (a Algorithm) params() (curveParams, error) {
	p, ok := algorithmRegistry[a]
	if !ok {
		return curveParams{}, newError(KindUnknownAlgorithm, "unsupported algorithm %q", string(a))
	}
	return p, nil
}

// digest hashes message with the curve's associated hash function.
func (p curveParams) digest(message []byte) []byte {
	switch p.hash {
	case crypto.SHA384:
		h := sha512.Sum384(message)
		return h[:]
	case crypto.SHA512:
		h := sha512.Sum512(message)
		return h[:]
	default:
		h := sha256.Sum256(message)
		return h[:]
	}
}
