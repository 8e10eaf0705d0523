package util

import (
	"io"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// Terminal abstracts the terminal queries needed to lay out help text
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements Terminal with golang.org/x/term
type DefaultTerminal struct{}

// IsTerminal checks if fd refers to a terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal referred to by fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

type fder interface {
	Fd() uintptr
}

// TerminalWidth returns the column count of w when it is a terminal and
// DefaultWidth otherwise.
func TerminalWidth(w io.Writer, t Terminal) int {
	if t == nil {
		t = &DefaultTerminal{}
	}
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	fd := int(f.Fd())
	if !t.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}
