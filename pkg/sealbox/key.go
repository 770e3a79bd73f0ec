package sealbox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// Key is a 256-bit sealing key.
//
// It can be marshalled and unmarshalled as a base58 string for storage. Its String method never
// returns key material.
type Key struct {
	k [KeySize]byte
}

// NewKey returns a new random key.
func NewKey() (*Key, error) {
	var key Key
	if _, err := rand.Read(key.k[:]); err != nil {
		return nil, err
	}

	return &key, nil
}

// KeyFromBytes copies b into a new Key. It returns an error unless b is exactly 32 bytes.
func KeyFromBytes(b []byte) (*Key, error) {
	if len(b) != KeySize {
		return nil, fmt.Errorf("invalid key size: %d", len(b))
	}

	var key Key
	copy(key.k[:], b)

	return &key, nil
}

// Bytes returns the raw key material.
func (k *Key) Bytes() []byte {
	return k.k[:]
}

// String returns a safe identifier for the key, not the key itself.
func (k *Key) String() string {
	id := sha256.Sum256(k.k[:])

	return hex.EncodeToString(id[:8])
}

// MarshalText encodes the key into base58 text and returns the result.
func (k *Key) MarshalText() (text []byte, err error) {
	return []byte(base58.Encode(k.k[:])), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the
// decoded key.
func (k *Key) UnmarshalText(text []byte) error {
	data, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	if len(data) != KeySize {
		return fmt.Errorf("invalid key size: %d", len(data))
	}

	copy(k.k[:], data)

	return nil
}

var (
	_ encoding.TextMarshaler   = &Key{}
	_ encoding.TextUnmarshaler = &Key{}
	_ fmt.Stringer             = &Key{}
)
