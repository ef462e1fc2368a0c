// Package scheduler drives the fetch-decode-execute cycle of a machine in
// frames and advances its timers on a logical 60 Hz clock.
package scheduler

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// TimerFrequency is the logical rate in Hz at which the timers count down.
const TimerFrequency = 60

var errInvalidRate = errors.New("frame rate and instructions per frame must be positive")

// TraceFunc is called with the address and the decoded instruction before
// the instruction gets executed.
type TraceFunc func(address uint16, ins instruction.Instruction)

// Scheduler executes a fixed number of instructions per frame.
//
// The logical clock advances 1000/fps/instructionsPerFrame ms per executed
// instruction, independent of the wall clock time that the host spends on a
// frame. It is kept as a cycle count, a 60 Hz boundary is crossed every
// fps*instructionsPerFrame/60 cycles.
type Scheduler struct {
	engine *engine.Engine
	trace  TraceFunc

	fps                  int
	instructionsPerFrame int

	cycles uint64 // executed instructions since creation
	ticks  uint64 // 60 Hz boundaries applied to the timers
}

// New returns a new scheduler for the given target frame rate and number of
// instructions executed per frame.
func New(eng *engine.Engine, fps, instructionsPerFrame int) (*Scheduler, error) {
	if fps <= 0 || instructionsPerFrame <= 0 {
		return nil, fmt.Errorf("%w: fps %d, instructions per frame %d", errInvalidRate, fps, instructionsPerFrame)
	}
	return &Scheduler{
		engine:               eng,
		fps:                  fps,
		instructionsPerFrame: instructionsPerFrame,
	}, nil
}

// SetTrace sets a function that gets called for every executed instruction.
func (s *Scheduler) SetTrace(trace TraceFunc) {
	s.trace = trace
}

// AdvanceFrame executes one frame worth of instructions. Execution stops at
// the first fault, which is returned.
func (s *Scheduler) AdvanceFrame(state *machine.State) error {
	for range s.instructionsPerFrame {
		if err := s.Step(state); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single instruction and advances the logical clock.
func (s *Scheduler) Step(state *machine.State) error {
	address := state.PC
	ins := instruction.Decode(state.Fetch())
	if s.trace != nil {
		s.trace(address, ins)
	}

	if err := s.engine.Execute(ins, state); err != nil {
		return fmt.Errorf("executing instruction: %w", err)
	}

	s.cycles++
	s.updateTimers(state)
	return nil
}

// ElapsedMilliseconds returns the logical time that passed since creation.
func (s *Scheduler) ElapsedMilliseconds() float64 {
	return float64(s.cycles) * 1000 / float64(s.fps*s.instructionsPerFrame)
}

// Ticks returns the number of 60 Hz timer ticks that passed since creation.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// updateTimers decrements both timers by the number of 60 Hz boundaries
// that were crossed since the last update, clamped at zero.
// floor(elapsed_ms * 60 / 1000) is computed exactly on the cycle count.
func (s *Scheduler) updateTimers(state *machine.State) {
	ticks := s.cycles * TimerFrequency / uint64(s.fps*s.instructionsPerFrame)
	crossed := ticks - s.ticks
	if crossed == 0 {
		return
	}
	s.ticks = ticks

	state.DelayTimer = decrement(state.DelayTimer, crossed)
	state.SoundTimer = decrement(state.SoundTimer, crossed)
}

func decrement(timer uint8, ticks uint64) uint8 {
	if uint64(timer) <= ticks {
		return 0
	}
	return timer - uint8(ticks)
}
