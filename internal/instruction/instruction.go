// Package instruction contains the decoded CHIP-8 instruction type and the
// decoder that maps 16-bit instruction words to it.
package instruction

// Absent marks an unused register or operand field.
const Absent = -1

// Instruction is a decoded CHIP-8 instruction. It is a plain value that is
// created freshly for every decode.
type Instruction struct {
	Opcode  Opcode
	Reg1    int    // first register index from bits 8-11, or Absent
	Reg2    int    // second register index from bits 4-7, or Absent
	Operand int    // immediate value or address, or Absent
	Word    uint16 // raw instruction word
}

// HasReg2 returns true if the instruction uses a second register operand
// instead of an immediate value.
func (i Instruction) HasReg2() bool {
	return i.Reg2 != Absent
}

// IsValid returns true if the word decoded to a known instruction.
func (i Instruction) IsValid() bool {
	return i.Opcode != Invalid
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.Opcode == Jsr
}

// IsJump returns true if the instruction is an unconditional jump.
func (i Instruction) IsJump() bool {
	return i.Opcode == Jmp || i.Opcode == Jmi
}

// IsReturn returns true if the instruction is a return from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.Opcode == Rts
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	switch i.Opcode {
	case Skeq, Skne, Skpr, Skup:
		return true
	default:
		return false
	}
}

// IsDataReference returns true if the operand of the instruction is the
// address of data in memory.
func (i Instruction) IsDataReference() bool {
	return i.Opcode == Mvi
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	return i.Opcode.String()
}
