package engine

import (
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// drawSprite XOR-blits an 8 pixel wide sprite of ins.Operand rows, read from
// memory at the index register, at the position held in the two registers.
// The flag register is set to 1 if any set pixel was cleared.
//
// A sprite row generally straddles two framebuffer bytes:
//
//	..aaaaaa bb......   current content, window aaaaaabb
//	..XXXXXX XX......   sprite row
//
// The window is reassembled from both bytes, XORed with the sprite row and
// split back so that only the covered bits of each byte are replaced.
func drawSprite(ins instruction.Instruction, s *machine.State) {
	x := int(s.Registers[ins.Reg1])
	y := int(s.Registers[ins.Reg2])
	fb := &s.Framebuffer

	var collision uint8
	for row := range ins.Operand {
		idx := ((y+row)*machine.ScreenWidth + x) % machine.PixelCount
		i1 := idx >> 3
		i2 := (i1 + 1) & (machine.FramebufferSize - 1)
		shift := uint(idx & 0x07)

		old := (uint16(fb[i1])<<shift | uint16(fb[i2])>>(8-shift)) & 0xFF
		sprite := uint16(s.ReadMemory(s.Index + uint16(row)))
		updated := old ^ sprite

		if ^updated&old != 0 {
			collision = 1
		}

		fb[i1] = byte(uint16(fb[i1])&(0xFF00>>shift) | updated>>shift)
		fb[i2] = byte(uint16(fb[i2])&(0xFF>>shift) | updated<<(8-shift))
	}

	s.Registers[machine.FlagRegister] = collision
}
