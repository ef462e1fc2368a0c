// Package runner runs a machine frame by frame at the target frame rate and
// connects it to a renderer.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/log"
)

// Runner drives a scheduler in real time. The machine state is only ever
// accessed from the goroutine calling Run.
type Runner struct {
	logger    *log.Logger
	scheduler *scheduler.Scheduler
	renderer  display.Renderer
	keys      <-chan uint8

	frameDuration time.Duration
	frames        int
}

// New returns a new runner. If the renderer provides key presses they are
// applied to the keypad at the start of every frame.
func New(logger *log.Logger, sched *scheduler.Scheduler, renderer display.Renderer,
	opts options.Machine, trace bool) *Runner {

	r := &Runner{
		logger:        logger,
		scheduler:     sched,
		renderer:      renderer,
		frameDuration: time.Second / time.Duration(opts.FPS),
		frames:        opts.Frames,
	}
	if source, ok := renderer.(display.KeySource); ok {
		r.keys = source.Keys()
	}
	if trace {
		sched.SetTrace(r.trace)
	}
	return r
}

// Run executes frames until the context is cancelled, the configured number
// of frames has been executed or the machine faults.
func (r *Runner) Run(ctx context.Context, state *machine.State) error {
	next := time.Now()

	for frame := 1; ; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.applyKeys(state)

		if err := r.scheduler.AdvanceFrame(state); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := r.renderer.Render(state.Framebuffer[:]); err != nil {
			return fmt.Errorf("rendering frame %d: %w", frame, err)
		}

		if r.frames > 0 && frame >= r.frames {
			r.logger.Debug("Frame limit reached",
				log.Int("frames", frame),
				log.String("elapsed", fmt.Sprintf("%.0fms", r.scheduler.ElapsedMilliseconds())))
			return nil
		}

		next = next.Add(r.frameDuration)
		if err := sleepUntil(ctx, next); err != nil {
			return err
		}
	}
}

// applyKeys releases all keys and presses the keys that were received since
// the previous frame. Terminals do not report key releases, a key press
// is therefore held for a single frame.
func (r *Runner) applyKeys(state *machine.State) {
	if r.keys == nil {
		return
	}

	state.ReleaseKeys()
	for {
		select {
		case key := <-r.keys:
			state.PressKey(key)
		default:
			return
		}
	}
}

func (r *Runner) trace(address uint16, ins instruction.Instruction) {
	r.logger.Debug("Executing", log.String("instruction", disasm.Line(address, ins)))
}

// sleepUntil waits until the deadline has passed or the context is done.
func sleepUntil(ctx context.Context, deadline time.Time) error {
	wait := time.Until(deadline)
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
