// Package display renders the packed CHIP-8 framebuffer to terminal based
// outputs and collects key presses for the hex keypad.
package display

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// Renderer renders a packed framebuffer.
type Renderer interface {
	// Render draws the framebuffer. The buffer must not be retained after
	// the call returns.
	Render(framebuffer []byte) error
	// Close releases the resources of the renderer.
	Close() error
}

// KeySource is implemented by renderers that read keypad input.
// Every received value is the index of a pressed key.
type KeySource interface {
	Keys() <-chan uint8
}

const (
	pixelOn  = "██"
	pixelOff = "  "
)

// Frame returns the text representation of a packed framebuffer, one line
// per pixel row, two characters per pixel.
func Frame(framebuffer []byte) string {
	var sb strings.Builder
	sb.Grow(machine.ScreenHeight * (machine.ScreenWidth*len(pixelOn) + 1))

	for row := range machine.ScreenHeight {
		for col := range machine.ScreenWidth {
			if machine.PixelSet(framebuffer, col, row) {
				sb.WriteString(pixelOn)
			} else {
				sb.WriteString(pixelOff)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// None is a renderer that discards all output.
type None struct{}

// Render does nothing.
func (None) Render([]byte) error { return nil }

// Close does nothing.
func (None) Close() error { return nil }

// New returns the renderer for the given name. The cancel function is
// called when the user requests to quit from an interactive renderer.
func New(name string, cancel func()) (Renderer, error) {
	switch name {
	case options.RendererNone:
		return None{}, nil
	case options.RendererText:
		return NewTerminal()
	case options.RendererGUI:
		gui, err := NewGUI(cancel)
		if err != nil {
			return nil, err
		}
		return gui, nil
	default:
		return nil, fmt.Errorf("unsupported renderer '%s'", name)
	}
}
