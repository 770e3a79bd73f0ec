package main

import (
	"github.com/alecthomas/kong"
)

type wipeCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"The paths of the files to overwrite and remove."`
}

func (cmd *wipeCmd) Run(_ *kong.Context) error {
	for _, path := range cmd.Paths {
		if err := shredFile(path); err != nil {
			return err
		}
	}

	return nil
}
