package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ANSI escape sequences used by the text renderer.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Text renders the framebuffer as text using ANSI escape sequences.
type Text struct {
	w       io.Writer
	restore func() error
	keys    chan uint8
	started bool
}

// NewText returns a text renderer that writes to w.
func NewText(w io.Writer) *Text {
	return &Text{
		w:       w,
		restore: func() error { return nil },
	}
}

// NewTerminal returns a text renderer for the terminal connected to stdout.
// Stdin is switched to raw mode if it is a terminal, key presses are read
// from it in the background.
func NewTerminal() (*Text, error) {
	t := NewText(os.Stdout)

	restore, err := enterRawMode(int(os.Stdin.Fd()))
	if err != nil {
		return t, nil //nolint:nilerr // stdin is not a terminal, run without keypad input
	}
	t.restore = restore
	t.keys = make(chan uint8, keyBufferSize)
	go readKeys(bufio.NewReader(os.Stdin), t.keys)
	return t, nil
}

// Render draws the framebuffer at the top left corner of the terminal.
func (t *Text) Render(framebuffer []byte) error {
	prefix := cursorHome
	if !t.started {
		prefix = hideCursor + clearScreen + cursorHome
		t.started = true
	}

	if _, err := io.WriteString(t.w, prefix+Frame(framebuffer)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Keys returns the channel of key presses, it is nil if stdin is not a terminal.
func (t *Text) Keys() <-chan uint8 {
	return t.keys
}

// Close restores the cursor and the terminal mode.
func (t *Text) Close() error {
	if t.started {
		if _, err := io.WriteString(t.w, showCursor); err != nil {
			return fmt.Errorf("restoring cursor: %w", err)
		}
	}
	if err := t.restore(); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}

// readKeys forwards keypad key presses read from r until r fails.
func readKeys(r io.RuneReader, keys chan<- uint8) {
	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return
		}
		sendKey(keys, ch)
	}
}
