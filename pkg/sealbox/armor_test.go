package sealbox

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestArmorRoundTrip(t *testing.T) {
	t.Parallel()

	box := New()

	message, err := box.Seal(key, "hello")
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Dearmor(Armor(message))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded message", message, decoded)

	plaintext, err := box.Open(key, decoded)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "plaintext", "hello", plaintext)
}

func TestDearmorWhitespace(t *testing.T) {
	t.Parallel()

	box := New()

	message, err := box.Seal(key, "hello")
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Dearmor("  " + Armor(message) + "\n")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded message", message, decoded)
}

func TestDearmorBadInput(t *testing.T) {
	t.Parallel()

	if _, err := Dearmor("*** not base64 ***"); err == nil {
		t.Fatal("should not have decoded")
	}
}
