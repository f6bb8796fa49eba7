// Package display provides text sinks for progress messages.
//
// A [Display] mirrors a small character display: it is initialised once
// with [Display.Begin], then receives short lines of text at a given
// size and can be cleared between messages.
package display

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

const clearScreen = "\x1b[2J\x1b[H"

// Display is a text output device.
type Display interface {
	// Begin initialises the device at the given bus address.
	Begin(address int) error
	// Print writes text with the given size (1 = normal, 2 = large, 3+ = title).
	Print(text string, size int)
	// Clear erases everything printed so far.
	Clear()
}

// Terminal renders display output to a terminal.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	address int
	began   bool
	styles  [3]lipgloss.Style
}

// NewTerminal returns a terminal display writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{
		w: w,
		styles: [3]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
			lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		},
	}
}

// Begin records the address and marks the display ready. Negative
// addresses are rejected.
func (t *Terminal) Begin(address int) error {
	if address < 0 {
		return fmt.Errorf("display: invalid address %#x", address)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.address = address
	t.began = true
	return nil
}

// Address returns the address passed to Begin.
func (t *Terminal) Address() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.address
}

// Print renders text on its own line.
func (t *Terminal) Print(text string, size int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := min(max(size, 1), len(t.styles)) - 1
	fmt.Fprintln(t.w, t.styles[idx].Render(strings.TrimRight(text, "\n")))
}

// Clear erases the terminal.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	io.WriteString(t.w, clearScreen)
}

// Nop discards all output.
type Nop struct{}

func (Nop) Begin(int) error   { return nil }
func (Nop) Print(string, int) {}
func (Nop) Clear()            {}

var (
	_ Display = (*Terminal)(nil)
	_ Display = Nop{}
)
