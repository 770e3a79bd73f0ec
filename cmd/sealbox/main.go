package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/sealbox/pkg/sealbox"
	"golang.org/x/term"
)

type cli struct {
	NewKey newKeyCmd `cmd:"" help:"Generate a new sealing key."`
	Seal   sealCmd   `cmd:"" help:"Seal a message with a key."`
	Open   openCmd   `cmd:"" help:"Open a sealed message."`
	Wipe   wipeCmd   `cmd:"" help:"Overwrite and remove key or plaintext files."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func decodeKey(pathOrKey string) (*sealbox.Key, error) {
	var key sealbox.Key

	// Prompt for the key without echoing it.
	if pathOrKey == "-" {
		_, _ = fmt.Fprint(os.Stderr, "Enter key: ")

		text, err := term.ReadPassword(int(os.Stdin.Fd()))

		_, _ = fmt.Fprintln(os.Stderr)

		if err != nil {
			return nil, err
		}

		if err := key.UnmarshalText(bytes.TrimSpace(text)); err != nil {
			return nil, err
		}

		return &key, nil
	}

	// Try decoding the argument as a key directly.
	if err := key.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &key, nil
	}

	// Otherwise, treat it as the path to a key file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	if err := key.UnmarshalText(bytes.TrimSpace(b)); err != nil {
		return nil, err
	}

	return &key, nil
}

// readInput reads a whole file, or standard input if the path is "-", dearmoring the contents
// if asked.
func readInput(path string, armored bool) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, err
	}

	if armored {
		return sealbox.Dearmor(string(b))
	}

	return b, nil
}

// writeOutput writes a whole file, or standard output if the path is "-", armoring the contents
// if asked. A write which fails partway shreds the partial file rather than leaving it behind.
func writeOutput(path string, data []byte, armored bool, mode os.FileMode) error {
	if armored {
		data = append([]byte(sealbox.Armor(data)), '\n')
	}

	if path == "-" {
		_, err := os.Stdout.Write(data)

		return err
	}

	if err := os.WriteFile(path, data, mode); err != nil {
		if _, statErr := os.Lstat(path); statErr == nil {
			_ = shredFile(path)
		}

		return err
	}

	return nil
}
