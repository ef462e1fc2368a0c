package scheduler

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/engine"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

// selfLoop is a program that jumps to itself.
var selfLoop = []byte{0x12, 0x00}

func newScheduler(t *testing.T, fps, ipf int) *Scheduler {
	t.Helper()
	s, err := New(engine.New(1), fps, ipf)
	assert.NoError(t, err)
	return s
}

func newState(t *testing.T, image []byte) *machine.State {
	t.Helper()
	state := machine.New()
	assert.NoError(t, state.Load(image))
	return state
}

func TestNewInvalidRate(t *testing.T) {
	tests := []struct {
		name     string
		fps, ipf int
	}{
		{"zero fps", 0, 20},
		{"zero instructions", 60, 0},
		{"negative fps", -30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(engine.New(1), tt.fps, tt.ipf)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, errInvalidRate))
		})
	}
}

func TestAdvanceFrameEndToEnd(t *testing.T) {
	image := []byte{
		0x60, 0x0A, // mov v0 0x0A
		0x61, 0x05, // mov v1 0x05
		0x80, 0x14, // add v0 v1
		0x12, 0x06, // jmp 0x206
	}
	state := newState(t, image)
	s := newScheduler(t, 60, 20)

	assert.NoError(t, s.AdvanceFrame(state))
	assert.Equal(t, uint8(15), state.Registers[0])
	assert.Equal(t, uint8(0), state.Registers[machine.FlagRegister])
	assert.Equal(t, uint16(0x206), state.PC)

	assert.NoError(t, s.AdvanceFrame(state))
	assert.Equal(t, uint16(0x206), state.PC)
	assert.Equal(t, uint8(15), state.Registers[0])
}

func TestTimerDecayAt30FPS(t *testing.T) {
	for _, initial := range []uint8{0, 1, 2, 59, 60, 61, 200, 255} {
		state := newState(t, selfLoop)
		state.DelayTimer = initial
		state.SoundTimer = initial
		s := newScheduler(t, 30, 20)

		// a frame at 30 FPS is 2/60 s of logical time
		for frame := 1; frame <= 150; frame++ {
			assert.NoError(t, s.AdvanceFrame(state))

			want := max(int(initial)-2*frame, 0)
			assert.Equal(t, uint8(want), state.DelayTimer)
			assert.Equal(t, uint8(want), state.SoundTimer)
		}
	}
}

func TestTimerDecaysOncePerTick(t *testing.T) {
	state := newState(t, selfLoop)
	state.DelayTimer = 255
	s := newScheduler(t, 30, 20)

	// 10 instructions take 1/60 s at 30 FPS and 20 instructions per frame
	for i := 1; i <= 100; i++ {
		assert.NoError(t, s.Step(state))
		assert.Equal(t, uint8(255-i/10), state.DelayTimer)
	}
	assert.Equal(t, uint64(10), s.Ticks())
}

func TestTimerIndependentOfFrameRate(t *testing.T) {
	for _, fps := range []int{15, 30, 60} {
		state := newState(t, selfLoop)
		state.DelayTimer = 200
		s := newScheduler(t, fps, 20)

		// one logical second
		for range fps {
			assert.NoError(t, s.AdvanceFrame(state))
		}
		assert.Equal(t, uint8(140), state.DelayTimer)
		assert.Equal(t, uint64(60), s.Ticks())
		assert.Equal(t, float64(1000), s.ElapsedMilliseconds())
	}
}

func TestTimerWithUnevenRate(t *testing.T) {
	state := newState(t, selfLoop)
	state.DelayTimer = 100
	s := newScheduler(t, 50, 7)

	// 350 instructions per second, a tick every 5.833 instructions
	for range 350 {
		assert.NoError(t, s.Step(state))
	}
	assert.Equal(t, uint8(40), state.DelayTimer)
}

func TestTimerSetDuringFrameDecays(t *testing.T) {
	image := []byte{
		0x60, 0x05, // mov v0 5
		0xF0, 0x15, // sdelay v0
		0x12, 0x04, // jmp 0x204
	}
	state := newState(t, image)
	s := newScheduler(t, 60, 20)

	assert.NoError(t, s.AdvanceFrame(state))
	assert.Equal(t, uint8(4), state.DelayTimer)

	for range 10 {
		assert.NoError(t, s.AdvanceFrame(state))
	}
	assert.Equal(t, uint8(0), state.DelayTimer)
}

func TestAdvanceFrameStopsOnFault(t *testing.T) {
	image := []byte{
		0x60, 0x01, // mov v0 1
		0xFF, 0xFF, // invalid
		0x61, 0x01, // mov v1 1
	}
	state := newState(t, image)
	s := newScheduler(t, 60, 20)

	err := s.AdvanceFrame(state)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidOpcode))
	assert.Equal(t, uint8(1), state.Registers[0])
	assert.Equal(t, uint8(0), state.Registers[1])
	assert.Equal(t, uint16(0x204), state.PC)
}

func TestAdvanceFrameEmptyImageFaults(t *testing.T) {
	state := newState(t, nil)
	s := newScheduler(t, 60, 20)

	err := s.AdvanceFrame(state)
	assert.True(t, errors.Is(err, engine.ErrInvalidOpcode))
}

func TestTrace(t *testing.T) {
	image := []byte{
		0x60, 0x0A, // mov v0 0x0A
		0x12, 0x02, // jmp 0x202
	}
	state := newState(t, image)
	s := newScheduler(t, 60, 4)

	var addresses []uint16
	var opcodes []instruction.Opcode
	s.SetTrace(func(address uint16, ins instruction.Instruction) {
		addresses = append(addresses, address)
		opcodes = append(opcodes, ins.Opcode)
	})

	assert.NoError(t, s.AdvanceFrame(state))
	assert.Equal(t, []uint16{0x200, 0x202, 0x202, 0x202}, addresses)
	assert.Equal(t, []instruction.Opcode{instruction.Mov, instruction.Jmp, instruction.Jmp, instruction.Jmp}, opcodes)
}
