// Package termsize reports the usable width of the terminal.
//
// Lookups never fail: when the terminal cannot be queried the width falls
// back to $COLUMNS, and then to a caller-supplied constant.
package termsize

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
)

// DefaultFallback is the width used when nothing better is known.
const DefaultFallback = 80

// Provider reports terminal dimensions in character cells.
type Provider interface {
	Size() (width, height int, err error)
}

// Terminal queries a file descriptor with the TTY size ioctl.
type Terminal struct {
	fd uintptr
}

// ForFile returns a Provider for f.
func ForFile(f *os.File) Terminal {
	return Terminal{fd: f.Fd()}
}

// Size implements Provider.
func (t Terminal) Size() (int, int, error) {
	return term.GetSize(t.fd)
}

// Fixed is a Provider with constant dimensions.
type Fixed struct {
	Width, Height int
}

// Size implements Provider.
func (f Fixed) Size() (int, int, error) {
	return f.Width, f.Height, nil
}

// Width returns the usable width from p, then $COLUMNS, then fallback.
// A nil p skips the terminal query. Non-positive fallbacks are replaced
// by DefaultFallback.
func Width(p Provider, fallback int) int {
	if p != nil {
		if w, _, err := p.Size(); err == nil && w > 0 {
			return w
		}
	}
	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	if fallback <= 0 {
		return DefaultFallback
	}
	return fallback
}
