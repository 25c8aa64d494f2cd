package ecsig

// SignEC routes a signing call through the algorithm registry. The key's
// concrete type must already match alg; the dispatcher validates the tag
// but never inspects key content, so a mismatched pairing produces an
// undefined cryptographic result rather than a typed error.
func SignEC(message []byte, key Signer, alg Algorithm) (string, error) {
	if _, err := alg.params(); err != nil {
		return "", err
	}
	return key.Sign(message, alg)
}

// VerifyEC routes a verification call through the algorithm registry.
// It returns (true, nil) on a matching signature, (false, nil) on a
// cryptographic mismatch, and a non-nil error when verification could
// not run at all.
func VerifyEC(message []byte, signature string, key Verifier, alg Algorithm) (bool, error) {
	if _, err := alg.params(); err != nil {
		return false, err
	}
	return key.Verify(message, signature, alg)
}
