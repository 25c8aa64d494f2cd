package ecsig

import (
	"encoding/asn1"
	"errors"

	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// DER parsing and serialization for secp256k1 key structures. The stdlib
// x509 package rejects the secp256k1 named-curve OID, so the SEC1 (RFC
// 5915), PKCS8 and SPKI shells are handled here with cryptobyte, the same
// machinery x509 itself is built on.

var (
	oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// parseSEC1PrivateKey extracts the private scalar from a SEC1 ECPrivateKey
// structure. When the optional curve parameters are present they must name
// secp256k1.
func parseSEC1PrivateKey(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, casn1.SEQUENCE) {
		return nil, errors.New("malformed SEC1 private key structure")
	}
	var version int
	if !inner.ReadASN1Integer(&version) || version != 1 {
		return nil, errors.New("malformed SEC1 private key version")
	}
	var scalar cryptobyte.String
	if !inner.ReadASN1(&scalar, casn1.OCTET_STRING) {
		return nil, errors.New("malformed SEC1 private key scalar")
	}
	var params cryptobyte.String
	var hasParams bool
	if !inner.ReadOptionalASN1(&params, &hasParams, casn1.Tag(0).Constructed().ContextSpecific()) {
		return nil, errors.New("malformed SEC1 curve parameters")
	}
	if hasParams {
		var oid asn1.ObjectIdentifier
		if !params.ReadASN1ObjectIdentifier(&oid) {
			return nil, errors.New("malformed SEC1 curve parameters")
		}
		if !oid.Equal(oidSecp256k1) {
			return nil, errors.New("SEC1 key names a curve other than secp256k1")
		}
	}
	return []byte(scalar), nil
}

// parsePKCS8PrivateKey extracts the private scalar from a PKCS8 shell whose
// algorithm identifier names the secp256k1 curve. The PKCS8 privateKey
// field contains a nested SEC1 ECPrivateKey.
func parsePKCS8PrivateKey(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, casn1.SEQUENCE) {
		return nil, errors.New("malformed PKCS8 structure")
	}
	var version int
	if !inner.ReadASN1Integer(&version) || version != 0 {
		return nil, errors.New("malformed PKCS8 version")
	}
	if err := readECAlgorithmIdentifier(&inner); err != nil {
		return nil, err
	}
	var keyBytes cryptobyte.String
	if !inner.ReadASN1(&keyBytes, casn1.OCTET_STRING) {
		return nil, errors.New("malformed PKCS8 private key field")
	}
	return parseSEC1PrivateKey(keyBytes)
}

// parseSPKIPublicKey extracts the SEC1 point bytes from a
// SubjectPublicKeyInfo shell naming the secp256k1 curve.
func parseSPKIPublicKey(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, casn1.SEQUENCE) {
		return nil, errors.New("malformed public key structure")
	}
	if err := readECAlgorithmIdentifier(&inner); err != nil {
		return nil, err
	}
	var point asn1.BitString
	if !inner.ReadASN1BitString(&point) {
		return nil, errors.New("malformed public key point")
	}
	if point.BitLength%8 != 0 {
		return nil, errors.New("public key point is not byte-aligned")
	}
	return point.RightAlign(), nil
}

func readECAlgorithmIdentifier(s *cryptobyte.String) error {
	var algID cryptobyte.String
	if !s.ReadASN1(&algID, casn1.SEQUENCE) {
		return errors.New("malformed algorithm identifier")
	}
	var algOID, curveOID asn1.ObjectIdentifier
	if !algID.ReadASN1ObjectIdentifier(&algOID) || !algID.ReadASN1ObjectIdentifier(&curveOID) {
		return errors.New("malformed algorithm identifier")
	}
	if !algOID.Equal(oidECPublicKey) {
		return errors.New("key is not an EC key")
	}
	if !curveOID.Equal(oidSecp256k1) {
		return errors.New("key names a curve other than secp256k1")
	}
	return nil
}

// marshalSEC1PrivateKey builds a SEC1 ECPrivateKey structure from a 32-byte
// scalar and an uncompressed public point.
func marshalSEC1PrivateKey(scalar, point []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(scalar)
		b.AddASN1(casn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidSecp256k1)
		})
		b.AddASN1(casn1.Tag(1).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1BitString(point)
		})
	})
	return b.Bytes()
}

func marshalPKCS8PrivateKey(scalar, point []byte) ([]byte, error) {
	sec1, err := marshalSEC1PrivateKey(scalar, point)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(0)
		addECAlgorithmIdentifier(b)
		b.AddASN1OctetString(sec1)
	})
	return b.Bytes()
}

func marshalSPKIPublicKey(point []byte) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addECAlgorithmIdentifier(b)
		b.AddASN1BitString(point)
	})
	return b.Bytes()
}

func addECAlgorithmIdentifier(b *cryptobyte.Builder) {
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(oidECPublicKey)
		b.AddASN1ObjectIdentifier(oidSecp256k1)
	})
}
