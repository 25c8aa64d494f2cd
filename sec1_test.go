package ecsig

import (
	"bytes"
	"encoding/asn1"
	"testing"

	secec "gitlab.com/yawning/secp256k1-voi/secec"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
)

func k256TestKey(t *testing.T) (scalar, point []byte) {
	t.Helper()
	priv, err := secec.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return priv.Bytes(), priv.PublicKey().Point().UncompressedBytes()
}

func TestSEC1RoundTrip(t *testing.T) {
	scalar, point := k256TestKey(t)

	der, err := marshalSEC1PrivateKey(scalar, point)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := parseSEC1PrivateKey(der)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bytes.Equal(parsed, scalar) {
		t.Fatal("scalar should survive SEC1 round trip")
	}
}

func TestPKCS8RoundTrip(t *testing.T) {
	scalar, point := k256TestKey(t)

	der, err := marshalPKCS8PrivateKey(scalar, point)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := parsePKCS8PrivateKey(der)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bytes.Equal(parsed, scalar) {
		t.Fatal("scalar should survive PKCS8 round trip")
	}
}

func TestSPKIRoundTrip(t *testing.T) {
	_, point := k256TestKey(t)

	der, err := marshalSPKIPublicKey(point)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := parseSPKIPublicKey(der)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bytes.Equal(parsed, point) {
		t.Fatal("point should survive SPKI round trip")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	garbage := []byte("definitely not DER")

	if _, err := parseSEC1PrivateKey(garbage); err == nil {
		t.Fatal("SEC1 parse should reject garbage")
	}
	if _, err := parsePKCS8PrivateKey(garbage); err == nil {
		t.Fatal("PKCS8 parse should reject garbage")
	}
	if _, err := parseSPKIPublicKey(garbage); err == nil {
		t.Fatal("SPKI parse should reject garbage")
	}
}

func TestSEC1RejectsForeignCurve(t *testing.T) {
	scalar, _ := k256TestKey(t)
	oidP256 := asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}

	var b cryptobyte.Builder
	b.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(1)
		b.AddASN1OctetString(scalar)
		b.AddASN1(casn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidP256)
		})
	})
	der, err := b.Bytes()
	if err != nil {
		t.Fatalf("build test DER: %v", err)
	}

	if _, err := parseSEC1PrivateKey(der); err == nil {
		t.Fatal("SEC1 parse should reject a key naming another curve")
	}
}
