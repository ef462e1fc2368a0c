package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

const (
	entryLabel  = "Start"
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// collectLabels returns labels for the program start and all jump and call
// targets that are inside the image and aligned to an instruction. Call
// destinations are named as functions, a call naming wins over a jump naming
// for the same address.
func collectLabels(image []byte) map[uint16]string {
	labels := map[uint16]string{
		machine.ProgramStart: entryLabel,
	}
	end := machine.ProgramStart + len(image)

	for offset := 0; offset+1 < len(image); offset += 2 {
		ins := instruction.Decode(uint16(image[offset])<<8 | uint16(image[offset+1]))
		if !isBranch(ins) {
			continue
		}

		// labels are only emitted at instruction boundaries
		target := ins.Operand
		if target < machine.ProgramStart || target >= end || target%2 != 0 {
			continue
		}

		address := uint16(target)
		name, ok := labels[address]
		switch {
		case name == entryLabel:
		case ins.IsCall():
			labels[address] = fmt.Sprintf(funcNaming, address)
		case !ok:
			labels[address] = fmt.Sprintf(labelNaming, address)
		}
	}
	return labels
}

// isBranch returns true for jumps and calls to an absolute address.
func isBranch(ins instruction.Instruction) bool {
	return ins.Opcode == instruction.Jmp || ins.IsCall()
}
