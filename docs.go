// Package ecsig provides ECDSA signing and verification over four curves
// (P-256, secp256k1, P-384, P-521) behind a single algorithm-tagged
// dispatch surface.
//
// Keys import from PEM text (SEC1 or PKCS8 private keys, standard
// public-key PEM) or from curve-native raw bytes. Signatures are
// fixed-width r || s bytes transported as URL-safe base64 without padding.
//
// A verification that runs and rejects the signature is a normal outcome,
// reported as (false, nil); errors are reserved for calls that could not
// run. Diagnostics go through an injectable one-method Logger and never
// include key material.
package ecsig
