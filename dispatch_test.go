package ecsig

import (
	"errors"
	"testing"
)

func TestDispatchAllAlgorithms(t *testing.T) {
	message := []byte("dispatch round trip")
	for _, alg := range Algorithms() {
		sk, vk := generateKeyPair(t, alg)

		sig, err := SignEC(message, sk, alg)
		if err != nil {
			t.Fatalf("%s: SignEC: %v", alg, err)
		}
		valid, err := VerifyEC(message, sig, vk, alg)
		if err != nil {
			t.Fatalf("%s: VerifyEC: %v", alg, err)
		}
		if !valid {
			t.Fatalf("%s: dispatched signature should verify", alg)
		}
	}
}

func TestDispatchUnknownAlgorithm(t *testing.T) {
	sk, vk := generateKeyPair(t, ES256)

	_, err := SignEC([]byte("msg"), sk, Algorithm("ES1024"))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("SignEC: expected UNKNOWN_ALGORITHM, got %v", err)
	}

	_, err = VerifyEC([]byte("msg"), "c2ln", vk, Algorithm("RS256"))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("VerifyEC: expected UNKNOWN_ALGORITHM, got %v", err)
	}
}

func TestAlgorithmSupported(t *testing.T) {
	for _, alg := range Algorithms() {
		if !alg.Supported() {
			t.Fatalf("%s should be supported", alg)
		}
	}
	if Algorithm("EdDSA").Supported() {
		t.Fatal("EdDSA should not be supported")
	}
	if Algorithm("").Supported() {
		t.Fatal("empty tag should not be supported")
	}
}

func TestErrorKindMatching(t *testing.T) {
	err := newError(KindDecoding, "bad input")
	if !errors.Is(err, ErrDecoding) {
		t.Fatal("kind-equal errors should match with errors.Is")
	}
	if errors.Is(err, ErrSigningFailed) {
		t.Fatal("different kinds should not match")
	}

	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatal("errors.As should extract *Error")
	}
	if typed.Kind != KindDecoding {
		t.Fatalf("expected DECODING_ERROR, got %s", typed.Kind)
	}
}
