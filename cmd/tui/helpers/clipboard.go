package helpers

import (
	"github.com/atotto/clipboard"
)

type Clipboard struct {
	write func(string) error
}

func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (h *Clipboard) Copy(text string) error {
	return h.write(text)
}

// IsAvailable reports whether the platform has a clipboard utility
func (h *Clipboard) IsAvailable() bool {
	return !clipboard.Unsupported
}
