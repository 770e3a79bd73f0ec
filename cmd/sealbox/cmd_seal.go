package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/sealbox/pkg/sealbox"
)

type sealCmd struct {
	Key       string `arg:"" help:"The key, the path to a key file, or - to prompt for one."`
	Plaintext string `arg:"" optional:"" default:"-" type:"path" help:"The path to the plaintext file."`
	Output    string `arg:"" optional:"" default:"-" type:"path" help:"The path to the sealed message file."`

	Armor bool `help:"Encode the sealed message as base64."`
}

func (cmd *sealCmd) Run(_ *kong.Context) error {
	// Decode the key.
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	// Read the plaintext.
	plaintext, err := readInput(cmd.Plaintext, false)
	if err != nil {
		return err
	}

	// Seal the message.
	message, err := sealbox.New().Seal(key.Bytes(), string(plaintext))
	if err != nil {
		return err
	}

	// Write the sealed message.
	return writeOutput(cmd.Output, message, cmd.Armor, 0o644)
}
