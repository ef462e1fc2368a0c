package display

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/machine"
)

const screenView = "screen"

// GUI renders the framebuffer into a gocui view. The gocui main loop runs
// in its own goroutine, frames are handed over as copies.
type GUI struct {
	g      *gocui.Gui
	keys   chan uint8
	done   chan struct{}
	cancel func()

	mu      sync.Mutex
	loopErr error
}

// NewGUI initializes the terminal and starts the gocui main loop.
// The cancel function is called when the main loop exits, for example
// because the user pressed Ctrl+C.
func NewGUI(cancel func()) (*GUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("initializing gui: %w", err)
	}

	gui := &GUI{
		g:      g,
		keys:   make(chan uint8, keyBufferSize),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	g.SetManagerFunc(layout)

	if err := gui.setKeybindings(); err != nil {
		g.Close()
		return nil, err
	}

	go gui.mainLoop()
	return gui, nil
}

func (gui *GUI) setKeybindings() error {
	if err := gui.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return fmt.Errorf("setting quit keybinding: %w", err)
	}

	for ch := range keymap {
		handler := func(*gocui.Gui, *gocui.View) error {
			sendKey(gui.keys, ch)
			return nil
		}
		if err := gui.g.SetKeybinding("", ch, gocui.ModNone, handler); err != nil {
			return fmt.Errorf("setting keybinding for '%c': %w", ch, err)
		}
	}
	return nil
}

func (gui *GUI) mainLoop() {
	err := gui.g.MainLoop()
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		gui.mu.Lock()
		gui.loopErr = err
		gui.mu.Unlock()
	}

	close(gui.done)
	if gui.cancel != nil {
		gui.cancel()
	}
}

// Render schedules the framebuffer to be drawn by the main loop.
func (gui *GUI) Render(framebuffer []byte) error {
	select {
	case <-gui.done:
		return gui.err()
	default:
	}

	frame := Frame(framebuffer)
	gui.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(screenView)
		if err != nil {
			return fmt.Errorf("getting screen view: %w", err)
		}
		v.Clear()
		_, err = fmt.Fprint(v, frame)
		return err
	})
	return nil
}

// Keys returns the channel of key presses.
func (gui *GUI) Keys() <-chan uint8 {
	return gui.keys
}

// Close stops the main loop and restores the terminal.
func (gui *GUI) Close() error {
	select {
	case <-gui.done:
	default:
		gui.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		<-gui.done
	}

	gui.g.Close()
	return gui.err()
}

func (gui *GUI) err() error {
	gui.mu.Lock()
	defer gui.mu.Unlock()
	if gui.loopErr != nil {
		return fmt.Errorf("running gui main loop: %w", gui.loopErr)
	}
	return nil
}

func layout(g *gocui.Gui) error {
	width := 2*machine.ScreenWidth + 1
	height := machine.ScreenHeight + 1

	v, err := g.SetView(screenView, 0, 0, width, height)
	if err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return fmt.Errorf("setting screen view: %w", err)
		}
		v.Title = "CHIP-8"
		v.FgColor = gocui.Attribute(termbox.ColorGreen)
	}
	return nil
}

func quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}
