// Package aead abstracts the AEAD primitive used to seal and open messages.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/codahale/sealbox/pkg/sealbox/internal"
)

// Cipher encrypts and decrypts messages with a detached authentication tag. Implementations
// verify the tag before releasing any plaintext and use no additional data.
type Cipher interface {
	// Seal encrypts the plaintext with the key and nonce, returning the ciphertext and a
	// 16-byte tag over it.
	Seal(key, nonce, plaintext []byte) (ciphertext, tag []byte, err error)

	// Open verifies the tag against the (key, nonce, ciphertext) triple and decrypts the
	// ciphertext. A mismatched tag returns an error and no plaintext bytes.
	Open(key, nonce, tag, ciphertext []byte) ([]byte, error)
}

// AES256GCM returns a Cipher backed by AES-256-GCM from the platform crypto library.
func AES256GCM() Cipher {
	return aesGCM{}
}

type aesGCM struct{}

func (aesGCM) Seal(key, nonce, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	// GCM appends the tag to the ciphertext; detach it.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	return sealed[:len(plaintext)], sealed[len(plaintext):], nil
}

func (aesGCM) Open(key, nonce, tag, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Re-attach the tag where GCM expects it.
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	return gcm.Open(nil, nonce, sealed, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	// aes.NewCipher would accept a 16- or 24-byte key and silently select AES-128 or AES-192.
	if len(key) != internal.KeySize {
		return nil, fmt.Errorf("invalid key size: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

var _ Cipher = aesGCM{}
