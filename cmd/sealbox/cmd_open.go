package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/sealbox/pkg/sealbox"
)

type openCmd struct {
	Key     string `arg:"" help:"The key, the path to a key file, or - to prompt for one."`
	Message string `arg:"" optional:"" default:"-" type:"path" help:"The path to the sealed message file."`
	Output  string `arg:"" optional:"" default:"-" type:"path" help:"The path to the plaintext file."`

	Armor bool `help:"Decode the sealed message from base64."`
}

func (cmd *openCmd) Run(_ *kong.Context) error {
	// Decode the key.
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	// Read the sealed message.
	message, err := readInput(cmd.Message, cmd.Armor)
	if err != nil {
		return err
	}

	// Open the message. Nothing is written unless it authenticates.
	plaintext, err := sealbox.New().Open(key.Bytes(), message)
	if err != nil {
		return err
	}

	return writeOutput(cmd.Output, []byte(plaintext), false, 0o644)
}
