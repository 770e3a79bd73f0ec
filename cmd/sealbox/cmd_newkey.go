package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/sealbox/pkg/sealbox"
)

type newKeyCmd struct {
	Output string `arg:"" optional:"" default:"-" type:"path" help:"The path to the key file."`
}

func (cmd *newKeyCmd) Run(_ *kong.Context) error {
	// Generate a new random key.
	key, err := sealbox.NewKey()
	if err != nil {
		return err
	}

	text, err := key.MarshalText()
	if err != nil {
		return err
	}

	// Key files are secrets; keep them owner-readable only.
	return writeOutput(cmd.Output, append(text, '\n'), false, 0o600)
}
