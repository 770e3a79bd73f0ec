package sealbox

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Armor encodes a sealed message as base64 text for transports which cannot carry raw bytes.
// Armor is a transport convenience only; the message layout inside is unchanged.
func Armor(message []byte) string {
	return base64.StdEncoding.EncodeToString(message)
}

// Dearmor decodes the results of Armor, ignoring surrounding whitespace.
func Dearmor(text string) ([]byte, error) {
	message, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("invalid armor: %w", err)
	}

	return message, nil
}
