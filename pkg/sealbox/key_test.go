package sealbox

import (
	"bytes"
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp"
)

func TestKeyText(t *testing.T) {
	t.Parallel()

	key, err := NewKey()
	if err != nil {
		t.Fatal(err)
	}

	text, err := key.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var decoded Key
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded key", key, &decoded, cmp.AllowUnexported(Key{}))
}

func TestKeyFromBytes(t *testing.T) {
	t.Parallel()

	key, err := KeyFromBytes(bytes.Repeat([]byte{0x69}, KeySize))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "key material", bytes.Repeat([]byte{0x69}, KeySize), key.Bytes())
}

func TestKeyFromBytesBadLength(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 16, 24, 31, 33, 64} {
		if _, err := KeyFromBytes(make([]byte, n)); err == nil {
			t.Errorf("should not have accepted a %d-byte key", n)
		}
	}
}

func TestKeyUnmarshalTextBadInput(t *testing.T) {
	t.Parallel()

	var key Key

	if err := key.UnmarshalText([]byte("0OIl not base58")); err == nil {
		t.Fatal("should not have decoded")
	}

	// Valid base58, wrong length.
	if err := key.UnmarshalText([]byte("2NEpo7TZRRrLZSi2U")); err == nil {
		t.Fatal("should not have decoded")
	}
}

func TestKeyStringIsNotKeyMaterial(t *testing.T) {
	t.Parallel()

	key, err := NewKey()
	if err != nil {
		t.Fatal(err)
	}

	text, err := key.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "identifier length", 16, len(key.String()))

	if strings.Contains(string(text), key.String()) {
		t.Fatal("identifier should not appear in the key text")
	}
}
