// Package internal contains constants shared by sealbox and its subpackages.
package internal

const (
	KeySize   = 32 // KeySize is the symmetric key size in bytes.
	NonceSize = 12 // NonceSize is the nonce size in bytes.
	TagSize   = 16 // TagSize is the authentication tag size in bytes.

	// Overhead is the number of bytes a sealed message adds to its plaintext, and thus the
	// minimum length of a sealed message.
	Overhead = NonceSize + TagSize
)
