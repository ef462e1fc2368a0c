// Package disasm produces human readable text for decoded CHIP-8 instructions.
// It is used for diagnostics only, the output format carries no semantics.
package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembler mnemonic of an instruction word as named by
// the CHIP-8 opcode table. The second return value is false if the table has
// no entry for the word.
func Mnemonic(word uint16) (string, bool) {
	firstNibble := (word & 0xF000) >> 12
	opcodes := chip8.Opcodes[int(firstNibble)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name, true
		}
	}
	return "", false
}

// Instruction returns the disassembly of a decoded instruction, for example
// "ld V0, $0A". Invalid instructions are returned as a data word.
func Instruction(ins instruction.Instruction) string {
	if !ins.IsValid() {
		return fmt.Sprintf(".word $%04X", ins.Word)
	}

	name, ok := Mnemonic(ins.Word)
	if !ok {
		name = ins.Name()
	}

	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Line returns a single diagnostic line containing the address, the raw
// instruction word and the disassembly.
func Line(address uint16, ins instruction.Instruction) string {
	return fmt.Sprintf("$%04X  %04X  %s", address, ins.Word, Instruction(ins))
}

// formatParams formats the operands of an instruction.
//
//nolint:cyclop // opcode dispatch
func formatParams(ins instruction.Instruction) string {
	switch ins.Opcode {
	case instruction.Cls, instruction.Rts:
		return ""

	case instruction.Jmp, instruction.Jsr:
		return fmt.Sprintf("$%03X", ins.Operand)
	case instruction.Jmi:
		return fmt.Sprintf("V0, $%03X", ins.Operand)
	case instruction.Mvi:
		return fmt.Sprintf("I, $%03X", ins.Operand)

	case instruction.Sprite:
		return fmt.Sprintf("V%X, V%X, $%X", ins.Reg1, ins.Reg2, ins.Operand)

	case instruction.Gdelay:
		return fmt.Sprintf("V%X, DT", ins.Reg1)
	case instruction.Key:
		return fmt.Sprintf("V%X, K", ins.Reg1)
	case instruction.Sdelay:
		return fmt.Sprintf("DT, V%X", ins.Reg1)
	case instruction.Ssound:
		return fmt.Sprintf("ST, V%X", ins.Reg1)
	case instruction.Adi:
		return fmt.Sprintf("I, V%X", ins.Reg1)
	case instruction.Font:
		return fmt.Sprintf("F, V%X", ins.Reg1)
	case instruction.Bcd:
		return fmt.Sprintf("B, V%X", ins.Reg1)
	case instruction.Str:
		return fmt.Sprintf("[I], V%X", ins.Reg1)
	case instruction.Ldr:
		return fmt.Sprintf("V%X, [I]", ins.Reg1)
	}

	switch {
	case ins.HasReg2():
		return fmt.Sprintf("V%X, V%X", ins.Reg1, ins.Reg2)
	case ins.Operand != instruction.Absent:
		return fmt.Sprintf("V%X, $%02X", ins.Reg1, ins.Operand)
	default:
		return fmt.Sprintf("V%X", ins.Reg1)
	}
}
