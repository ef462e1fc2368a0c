// Package engine implements the CHIP-8 instruction semantics. It applies
// decoded instructions to a machine state.
package engine

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrInvalidOpcode is returned when an instruction without semantics is executed.
var ErrInvalidOpcode = errors.New("invalid opcode")

// Engine executes decoded instructions.
type Engine struct {
	rnd *rand.Rand
}

// New returns a new engine whose random number generator is seeded with seed.
func New(seed uint64) *Engine {
	return &Engine{
		rnd: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Execute applies the instruction to the state. The program counter of the
// state must already point past the instruction.
// The only error is a wrapped ErrInvalidOpcode for an Invalid instruction.
//
//nolint:funlen,cyclop // opcode dispatch
func (e *Engine) Execute(ins instruction.Instruction, s *machine.State) error {
	switch ins.Opcode {
	case instruction.Mov:
		s.Registers[ins.Reg1] = operand2(ins, s)

	case instruction.Add:
		result := uint16(s.Registers[ins.Reg1]) + uint16(operand2(ins, s))
		s.Registers[ins.Reg1] = uint8(result)
		if ins.HasReg2() {
			s.Registers[machine.FlagRegister] = uint8(result >> 8)
		}

	case instruction.Or:
		s.Registers[ins.Reg1] |= s.Registers[ins.Reg2]

	case instruction.And:
		s.Registers[ins.Reg1] &= s.Registers[ins.Reg2]

	case instruction.Xor:
		s.Registers[ins.Reg1] ^= s.Registers[ins.Reg2]

	case instruction.Sub:
		subtract(s, ins.Reg1, s.Registers[ins.Reg1], s.Registers[ins.Reg2])

	case instruction.Rsb:
		subtract(s, ins.Reg1, s.Registers[ins.Reg2], s.Registers[ins.Reg1])

	case instruction.Shr:
		value := s.Registers[ins.Reg1]
		s.Registers[ins.Reg1] = value >> 1
		s.Registers[machine.FlagRegister] = value & 0x01

	case instruction.Shl:
		value := s.Registers[ins.Reg1]
		s.Registers[ins.Reg1] = value << 1
		s.Registers[machine.FlagRegister] = value >> 7

	case instruction.Mvi:
		s.Index = uint16(ins.Operand) & machine.AddressMask

	case instruction.Adi:
		s.Index += uint16(s.Registers[ins.Reg1])

	case instruction.Rand:
		s.Registers[ins.Reg1] = uint8(e.rnd.UintN(256)) & uint8(ins.Operand)

	case instruction.Skeq:
		if s.Registers[ins.Reg1] == operand2(ins, s) {
			s.PC += 2
		}

	case instruction.Skne:
		if s.Registers[ins.Reg1] != operand2(ins, s) {
			s.PC += 2
		}

	case instruction.Skpr:
		if s.Keys[s.Registers[ins.Reg1]&0x0F] {
			s.PC += 2
		}

	case instruction.Skup:
		if !s.Keys[s.Registers[ins.Reg1]&0x0F] {
			s.PC += 2
		}

	case instruction.Jmp:
		s.PC = uint16(ins.Operand)

	case instruction.Jmi:
		s.PC = uint16(ins.Operand) + uint16(s.Registers[0])

	case instruction.Jsr:
		s.Stack[s.StackPointer] = s.PC
		s.StackPointer = (s.StackPointer + 1) % machine.StackSize
		s.PC = uint16(ins.Operand)

	case instruction.Rts:
		s.StackPointer = (s.StackPointer + machine.StackSize - 1) % machine.StackSize
		s.PC = s.Stack[s.StackPointer]

	case instruction.Cls:
		s.Framebuffer = [machine.FramebufferSize]byte{}

	case instruction.Sprite:
		drawSprite(ins, s)

	case instruction.Gdelay:
		s.Registers[ins.Reg1] = s.DelayTimer

	case instruction.Sdelay:
		s.DelayTimer = s.Registers[ins.Reg1]

	case instruction.Ssound:
		s.SoundTimer = s.Registers[ins.Reg1]

	case instruction.Key:
		key, ok := s.PressedKey()
		if !ok {
			s.PC -= 2
			return nil
		}
		s.Registers[ins.Reg1] = key

	case instruction.Font:
		s.Index = machine.GlyphAddress(s.Registers[ins.Reg1])

	case instruction.Bcd:
		value := s.Registers[ins.Reg1]
		s.WriteMemory(s.Index, value/100)
		s.WriteMemory(s.Index+1, value/10%10)
		s.WriteMemory(s.Index+2, value%10)

	case instruction.Str:
		for reg := 0; reg <= ins.Reg1; reg++ {
			s.WriteMemory(s.Index+uint16(reg), s.Registers[reg])
		}

	case instruction.Ldr:
		for reg := 0; reg <= ins.Reg1; reg++ {
			s.Registers[reg] = s.ReadMemory(s.Index + uint16(reg))
		}

	default:
		return errors.Wrapf(ErrInvalidOpcode, "word $%04X at $%04X", ins.Word, s.PC-2)
	}

	return nil
}

// operand2 resolves the second operand, which is either a register or an
// immediate value.
func operand2(ins instruction.Instruction, s *machine.State) uint8 {
	if ins.HasReg2() {
		return s.Registers[ins.Reg2]
	}
	return uint8(ins.Operand)
}

// subtract stores minuend - subtrahend in the register and sets the flag
// register to 1 if no borrow occurred.
func subtract(s *machine.State, reg int, minuend, subtrahend uint8) {
	var flag uint8
	if minuend >= subtrahend {
		flag = 1
	}
	s.Registers[reg] = minuend - subtrahend
	s.Registers[machine.FlagRegister] = flag
}
