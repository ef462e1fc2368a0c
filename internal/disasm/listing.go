package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// Options controls the listing output.
type Options struct {
	HexComments    bool // output instruction words as hex values in comments
	OffsetComments bool // output addresses in comments
}

// Listing writes a linear disassembly of a program image, as loaded at
// machine.ProgramStart, to the writer. Jump and call targets inside the
// image get labels.
func Listing(w io.Writer, image []byte, opts Options) error {
	labels := collectLabels(image)

	if _, err := fmt.Fprintf(w, "; CHIP-8 ROM Disassembly\n\n.org $%03X\n\n", machine.ProgramStart); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for offset := 0; offset < len(image); offset += 2 {
		address := uint16(machine.ProgramStart + offset)
		if label, ok := labels[address]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label %s: %w", label, err)
			}
		}

		if offset+1 >= len(image) {
			if _, err := fmt.Fprintf(w, "  .byte $%02X\n", image[offset]); err != nil {
				return fmt.Errorf("writing data: %w", err)
			}
			break
		}

		ins := instruction.Decode(uint16(image[offset])<<8 | uint16(image[offset+1]))
		if err := writeInstruction(w, address, ins, labels, opts); err != nil {
			return err
		}
	}
	return nil
}

func writeInstruction(w io.Writer, address uint16, ins instruction.Instruction,
	labels map[uint16]string, opts Options) error {

	code := Instruction(ins)
	if isBranch(ins) {
		if label, ok := labels[uint16(ins.Operand)]; ok {
			name, found := Mnemonic(ins.Word)
			if !found {
				name = ins.Name()
			}
			code = fmt.Sprintf("%s %s", name, label)
		}
	}

	var comment string
	switch {
	case opts.OffsetComments && opts.HexComments:
		comment = fmt.Sprintf(" ; $%04X %04X", address, ins.Word)
	case opts.OffsetComments:
		comment = fmt.Sprintf(" ; $%04X", address)
	case opts.HexComments:
		comment = fmt.Sprintf(" ; %04X", ins.Word)
	}

	if _, err := fmt.Fprintf(w, "  %-20s%s\n", code, comment); err != nil {
		return fmt.Errorf("writing instruction at $%04X: %w", address, err)
	}
	return nil
}
