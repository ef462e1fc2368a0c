package engine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

// spriteState returns a state with the given sprite rows at the index
// register and the origin in V0/V1.
func spriteState(x, y uint8, rows ...byte) *machine.State {
	s := machine.New()
	s.Index = 0x300
	copy(s.Memory[0x300:], rows)
	s.Registers[0] = x
	s.Registers[1] = y
	return s
}

func draw(t *testing.T, s *machine.State, height int) {
	t.Helper()
	ins := instruction.Instruction{Opcode: instruction.Sprite, Reg1: 0, Reg2: 1, Operand: height}
	assert.NoError(t, New(1).Execute(ins, s))
}

func TestDrawSpriteAligned(t *testing.T) {
	s := spriteState(8, 2, 0xFF, 0x81)
	draw(t, s, 2)

	assert.Equal(t, byte(0xFF), s.Framebuffer[2*8+1])
	assert.Equal(t, byte(0x81), s.Framebuffer[3*8+1])
	assert.Equal(t, byte(0x00), s.Framebuffer[2*8+2])
	assert.Equal(t, uint8(0), s.Registers[machine.FlagRegister])
}

func TestDrawSpriteStraddlesBytes(t *testing.T) {
	s := spriteState(3, 0, 0xFF)
	draw(t, s, 1)

	assert.Equal(t, byte(0x1F), s.Framebuffer[0])
	assert.Equal(t, byte(0xE0), s.Framebuffer[1])
	for col := range machine.ScreenWidth {
		want := col >= 3 && col < 11
		assert.Equal(t, want, s.Pixel(col, 0))
	}
}

func TestDrawSpritePreservesNeighbourBits(t *testing.T) {
	s := spriteState(3, 0, 0x00)
	s.Framebuffer[0] = 0xE0
	s.Framebuffer[1] = 0x1F
	draw(t, s, 1)

	assert.Equal(t, byte(0xE0), s.Framebuffer[0])
	assert.Equal(t, byte(0x1F), s.Framebuffer[1])
	assert.Equal(t, uint8(0), s.Registers[machine.FlagRegister])
}

func TestDrawSpriteTwiceCollidesAndClears(t *testing.T) {
	origins := []struct{ x, y uint8 }{
		{0, 0}, {5, 7}, {60, 10}, {63, 31}, {100, 40},
	}

	for _, o := range origins {
		s := spriteState(o.x, o.y, 0xF0, 0x00, 0x3C, 0x81, 0xFF)

		draw(t, s, 5)
		assert.Equal(t, uint8(0), s.Registers[machine.FlagRegister])

		draw(t, s, 5)
		assert.Equal(t, uint8(1), s.Registers[machine.FlagRegister])
		assert.Equal(t, [machine.FramebufferSize]byte{}, s.Framebuffer)
	}
}

func TestDrawSpriteCollisionOnlyOnOverlap(t *testing.T) {
	s := spriteState(0, 0, 0xF0)
	draw(t, s, 1)

	s.Memory[0x300] = 0x0F
	draw(t, s, 1)
	assert.Equal(t, uint8(0), s.Registers[machine.FlagRegister])
	assert.Equal(t, byte(0xFF), s.Framebuffer[0])

	s.Memory[0x300] = 0x01
	draw(t, s, 1)
	assert.Equal(t, uint8(1), s.Registers[machine.FlagRegister])
	assert.Equal(t, byte(0xFE), s.Framebuffer[0])
}

func TestDrawSpriteWrapsRight(t *testing.T) {
	// the right part of a row at x=60 continues at the start of the next row
	s := spriteState(60, 0, 0xFF)
	draw(t, s, 1)

	assert.Equal(t, byte(0x0F), s.Framebuffer[7])
	assert.Equal(t, byte(0xF0), s.Framebuffer[8])
}

func TestDrawSpriteWrapsBottom(t *testing.T) {
	s := spriteState(0, 31, 0x80, 0x40)
	draw(t, s, 2)

	assert.True(t, s.Pixel(0, 31))
	assert.True(t, s.Pixel(1, 0))
}

func TestDrawSpriteWrapsBufferEnd(t *testing.T) {
	s := spriteState(60, 31, 0xFF)
	draw(t, s, 1)

	assert.Equal(t, byte(0x0F), s.Framebuffer[machine.FramebufferSize-1])
	assert.Equal(t, byte(0xF0), s.Framebuffer[0])
}

func TestDrawSpriteZeroHeight(t *testing.T) {
	s := spriteState(0, 0, 0xFF)
	s.Registers[machine.FlagRegister] = 1
	draw(t, s, 0)

	assert.Equal(t, [machine.FramebufferSize]byte{}, s.Framebuffer)
	assert.Equal(t, uint8(0), s.Registers[machine.FlagRegister])
}
