// Package hashsource defines the Hash collaborator contract consumed by
// package ecdsa's ReduceMessage, plus a crypto/sha256-backed implementation.
package hashsource

import "crypto/sha256"

// Hash reduces a byte string to a fixed-width digest. The Signer treats the
// output as opaque bytes, interpreted big-endian.
type Hash interface {
	Digest(msg []byte) []byte
}

// SHA256 is a Hash backed by crypto/sha256, producing a 32-byte digest.
type SHA256 struct{}

// Digest returns the SHA-256 digest of msg.
func (SHA256) Digest(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return sum[:]
}
