// Package sealbox seals and opens short text messages with AES-256-GCM.
//
// A sealed message is nonce (12 bytes) ‖ tag (16 bytes) ‖ ciphertext (N bytes), where the
// ciphertext is exactly as long as the UTF-8 plaintext. There is no length prefix, version byte,
// or magic number; both ends agree on the layout out of band.
//
// Nonces combine a process-wide counter with random bytes, so no two messages sealed by the same
// process can share a nonce. Sealbox does not manage, derive, or rotate keys, and it offers no
// protection against key compromise -- only against tampering with or corruption of the sealed
// message itself.
package sealbox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/codahale/sealbox/pkg/sealbox/internal"
	"github.com/codahale/sealbox/pkg/sealbox/internal/aead"
	"github.com/codahale/sealbox/pkg/sealbox/internal/nonce"
)

const (
	KeySize   = internal.KeySize   // KeySize is the symmetric key size in bytes.
	NonceSize = internal.NonceSize // NonceSize is the nonce size in bytes.
	TagSize   = internal.TagSize   // TagSize is the authentication tag size in bytes.

	// Overhead is the number of bytes a sealed message adds to its plaintext, and thus the
	// minimum length of a sealed message.
	Overhead = internal.Overhead
)

// ErrInvalidCiphertext is returned when a message cannot be opened, whether due to truncation,
// tampering, or an incorrect key. Every failure presents this same signal to the caller; the
// wrapped diagnostic text distinguishes the causes in logs.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Box seals and opens messages. A single Box is safe for arbitrary concurrent use; all its
// mutable state lives in the nonce generator. The zero value is not usable; construct one
// with New.
type Box struct {
	cipher aead.Cipher
	nonces *nonce.Generator
}

// New returns a Box backed by AES-256-GCM and a crypto/rand-fed nonce generator.
func New() *Box {
	return newBox(aead.AES256GCM(), nonce.NewGenerator(rand.Reader))
}

func newBox(c aead.Cipher, g *nonce.Generator) *Box {
	return &Box{cipher: c, nonces: g}
}

// Seal encrypts the plaintext with the given 32-byte key and returns the sealed message. It
// either succeeds or returns an error and no message; a key of the wrong length is caller
// misuse and surfaces as a hard error, never as a truncated or padded key.
func (b *Box) Seal(key []byte, plaintext string) ([]byte, error) {
	// Generate a nonce unique to this message.
	n, err := b.nonces.Next()
	if err != nil {
		return nil, err
	}

	// Encrypt the plaintext, producing a detached tag over the ciphertext.
	ciphertext, tag, err := b.cipher.Seal(key, n, []byte(plaintext))
	if err != nil {
		return nil, err
	}

	// Assemble nonce ‖ tag ‖ ciphertext.
	out := make([]byte, 0, Overhead+len(ciphertext))
	out = append(out, n...)
	out = append(out, tag...)
	out = append(out, ciphertext...)

	return out, nil
}

// Open decrypts a message sealed with the given key and returns the original plaintext. Any
// failure -- a truncated message, a tag mismatch, or recovered bytes which are not valid
// UTF-8 -- returns an error wrapping ErrInvalidCiphertext and no plaintext.
func (b *Box) Open(key, message []byte) (string, error) {
	// Reject messages too short to hold a nonce and tag before touching the cipher.
	if len(message) < Overhead {
		return "", fmt.Errorf("message too short (%d bytes): %w", len(message), ErrInvalidCiphertext)
	}

	// Split the message at its fixed offsets.
	n, tag, ciphertext := message[:NonceSize], message[NonceSize:Overhead], message[Overhead:]

	// Verify the tag and decrypt. A mismatched tag releases no plaintext bytes.
	plaintext, err := b.cipher.Open(key, n, tag, ciphertext)
	if err != nil {
		return "", fmt.Errorf("authentication failed: %w", ErrInvalidCiphertext)
	}

	// The recovered bytes must decode as UTF-8 text.
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("invalid plaintext encoding: %w", ErrInvalidCiphertext)
	}

	return string(plaintext), nil
}
