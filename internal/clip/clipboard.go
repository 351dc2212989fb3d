// Package clip copies normalized outlines to the system clipboard and reads
// raw listings from it.
package clip

import (
	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// Reader reads text from a clipboard.
type Reader interface {
	ReadAll() (string, error)
}

// System is the OS clipboard. On Linux it needs xclip, xsel or wl-clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func (System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}
