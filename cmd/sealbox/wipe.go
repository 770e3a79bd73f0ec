package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// shredFile overwrites the named file with random bytes, syncs it, and removes it. On flash
// media the overwrite may land on remapped blocks, so this is best-effort rather than a
// guarantee.
func shredFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}

	// Refuse to follow symbolic links; shred the file itself or nothing.
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}

	if _, err := io.CopyN(f, rand.Reader, info.Size()); err != nil {
		_ = f.Close()

		return err
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Remove(path)
}
