package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindProjectBinary locates the tocfmt binary: $TOCFMT_BINARY first, then
// bin/tocfmt in the nearest directory holding go.mod.
func FindProjectBinary() (string, error) {
	if p := os.Getenv("TOCFMT_BINARY"); p != "" {
		return p, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			bin := filepath.Join(dir, "bin", "tocfmt")
			if _, err := os.Stat(bin); err != nil {
				return "", fmt.Errorf("tocfmt binary not found at %s: %w", bin, err)
			}
			return bin, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root from working directory")
		}
		dir = parent
	}
}
