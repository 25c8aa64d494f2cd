package ecsig

import (
	"crypto"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"math/big"
	"strings"

	secec "gitlab.com/yawning/secp256k1-voi/secec"
)

// secp256k1 has no stdlib support, so the ES256K key types are built on
// secp256k1-voi. Signatures use the compact [R | S] encoding to match the
// fixed-width format of the NIST curves.

var k256SignOptions = &secec.ECDSAOptions{
	Hash:     crypto.SHA256,
	Encoding: secec.EncodingCompact,
}

var k256VerifyOptions = &secec.ECDSAOptions{
	Hash:     crypto.SHA256,
	Encoding: secec.EncodingCompact,
	// High-S signatures are accepted, matching the lenient NIST paths.
	RejectMalleable: false,
}

var k256Order, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

// SigningKeyK256 holds a secp256k1 private scalar and implements [Signer]
// for ES256K.
type SigningKeyK256 struct {
	priv *secec.PrivateKey
	log  Logger
}

// VerifyingKeyK256 holds a secp256k1 public point and implements [Verifier]
// for ES256K.
type VerifyingKeyK256 struct {
	pub *secec.PublicKey
	log Logger
}

var _ Signer = (*SigningKeyK256)(nil)
var _ Verifier = (*VerifyingKeyK256)(nil)

// NewSigningKeyK256FromPEM imports a secp256k1 private key from SEC1 or
// PKCS8 PEM text.
func NewSigningKeyK256FromPEM(pemText string, opts ...Option) (*SigningKeyK256, error) {
	o := resolveOptions(opts)

	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		o.log.Error("secp256k1 private key import: no PEM block found")
		return nil, newError(KindECPEM, "no PEM block found")
	}

	var (
		scalar []byte
		err    error
	)
	if strings.HasPrefix(strings.TrimSpace(pemText), sec1Header) {
		scalar, err = parseSEC1PrivateKey(block.Bytes)
	} else {
		scalar, err = parsePKCS8PrivateKey(block.Bytes)
	}
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 private key import: %v", err))
		return nil, newError(KindECPEM, "malformed secp256k1 private key structure")
	}

	priv, err := secec.NewPrivateKey(leftPadScalar(scalar, 32))
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 private key import: %v", err))
		return nil, newError(KindPrivateKeyIdentification, "invalid secp256k1 private scalar")
	}
	return &SigningKeyK256{priv: priv, log: o.log}, nil
}

// NewSigningKeyK256FromBytes imports a secp256k1 private key from its
// 32-byte big-endian scalar encoding.
func NewSigningKeyK256FromBytes(raw []byte, opts ...Option) (*SigningKeyK256, error) {
	o := resolveOptions(opts)
	priv, err := secec.NewPrivateKey(raw)
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 private key import: %v", err))
		return nil, newError(KindPrivateKeyIdentification, "invalid secp256k1 private scalar")
	}
	return &SigningKeyK256{priv: priv, log: o.log}, nil
}

// NewVerifyingKeyK256FromPEM imports a secp256k1 public key from standard
// public-key PEM text.
func NewVerifyingKeyK256FromPEM(pemText string, opts ...Option) (*VerifyingKeyK256, error) {
	o := resolveOptions(opts)

	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		o.log.Error("secp256k1 public key import: no PEM block found")
		return nil, newError(KindECPEM, "no PEM block found")
	}
	point, err := parseSPKIPublicKey(block.Bytes)
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 public key import: %v", err))
		return nil, newError(KindECPEM, "malformed public key structure")
	}

	pub, err := secec.NewPublicKey(point)
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 public key import: %v", err))
		return nil, newError(KindPublicKeyIdentification, "invalid secp256k1 public key point")
	}
	return &VerifyingKeyK256{pub: pub, log: o.log}, nil
}

// NewVerifyingKeyK256FromBytes imports a secp256k1 public key from SEC1
// point bytes, compressed or uncompressed.
func NewVerifyingKeyK256FromBytes(raw []byte, opts ...Option) (*VerifyingKeyK256, error) {
	o := resolveOptions(opts)
	pub, err := secec.NewPublicKey(raw)
	if err != nil {
		o.log.Error(fmt.Sprintf("secp256k1 public key import: %v", err))
		return nil, newError(KindPublicKeyIdentification, "invalid secp256k1 public key point")
	}
	return &VerifyingKeyK256{pub: pub, log: o.log}, nil
}

func (k *SigningKeyK256) Sign(message []byte, _ Algorithm) (string, error) {
	p := algorithmRegistry[ES256K]
	sig, err := k.priv.Sign(rand.Reader, p.digest(message), k256SignOptions)
	if err != nil {
		k.log.Error(fmt.Sprintf("secp256k1 signing failed: %v", err))
		return "", newError(KindSigningFailed, "secp256k1 signing operation failed")
	}
	return encodeSignature(sig), nil
}

func (k *VerifyingKeyK256) Verify(message []byte, encodedSig string, _ Algorithm) (bool, error) {
	p := algorithmRegistry[ES256K]

	raw, err := decodeSignature(encodedSig)
	if err != nil {
		k.log.Error(fmt.Sprintf("secp256k1 verification: %v", err))
		return false, err
	}
	if len(raw) != p.sigSize {
		k.log.Error(fmt.Sprintf("secp256k1 verification: signature must be %d bytes, got %d", p.sigSize, len(raw)))
		return false, newError(KindSignatureIdentification, "secp256k1 signatures must be %d bytes", p.sigSize)
	}

	half := p.sigSize / 2
	r := new(big.Int).SetBytes(raw[:half])
	s := new(big.Int).SetBytes(raw[half:])
	if !scalarInRange(r, k256Order) || !scalarInRange(s, k256Order) {
		k.log.Error("secp256k1 verification: signature scalars out of range")
		return false, newError(KindSignatureIdentification, "secp256k1 signature scalars out of range")
	}

	if !k.pub.Verify(p.digest(message), raw, k256VerifyOptions) {
		k.log.Error("secp256k1 verification failed: signature does not match")
		return false, nil
	}
	return true, nil
}

// leftPadScalar restores leading zero bytes a DER encoder may have trimmed.
func leftPadScalar(scalar []byte, size int) []byte {
	if len(scalar) >= size {
		return scalar
	}
	padded := make([]byte, size)
	copy(padded[size-len(scalar):], scalar)
	return padded
}
