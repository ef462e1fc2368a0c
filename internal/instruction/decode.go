package instruction

// Decode maps a 16-bit instruction word to a decoded instruction.
// Decoding never fails, words that do not match any known pattern decode to
// an Invalid instruction with all operands Absent.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Opcode:  Invalid,
		Reg1:    Absent,
		Reg2:    Absent,
		Operand: Absent,
		Word:    word,
	}

	x := int(extractRegisterX(word))
	y := int(extractRegisterY(word))
	address := int(word & 0x0FFF)
	value := int(word & 0x00FF)
	nibble := int(word & 0x000F)

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			ins.Opcode = Cls
		case 0x00EE:
			ins.Opcode = Rts
		}

	case 0x1000:
		ins.Opcode, ins.Operand = Jmp, address

	case 0x2000:
		ins.Opcode, ins.Operand = Jsr, address

	case 0x3000:
		ins.Opcode, ins.Reg1, ins.Operand = Skeq, x, value

	case 0x4000:
		ins.Opcode, ins.Reg1, ins.Operand = Skne, x, value

	case 0x5000:
		if nibble == 0 {
			ins.Opcode, ins.Reg1, ins.Reg2 = Skeq, x, y
		}

	case 0x6000:
		ins.Opcode, ins.Reg1, ins.Operand = Mov, x, value

	case 0x7000:
		ins.Opcode, ins.Reg1, ins.Operand = Add, x, value

	case 0x8000:
		if op, ok := aluOpcodes[word&0x000F]; ok {
			ins.Opcode, ins.Reg1, ins.Reg2 = op, x, y
		}

	case 0x9000:
		if nibble == 0 {
			ins.Opcode, ins.Reg1, ins.Reg2 = Skne, x, y
		}

	case 0xA000:
		ins.Opcode, ins.Operand = Mvi, address

	case 0xB000:
		ins.Opcode, ins.Operand = Jmi, address

	case 0xC000:
		ins.Opcode, ins.Reg1, ins.Operand = Rand, x, value

	case 0xD000:
		ins.Opcode, ins.Reg1, ins.Reg2, ins.Operand = Sprite, x, y, nibble

	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			ins.Opcode, ins.Reg1 = Skpr, x
		case 0xA1:
			ins.Opcode, ins.Reg1 = Skup, x
		}

	case 0xF000:
		if op, ok := miscOpcodes[word&0x00FF]; ok {
			ins.Opcode, ins.Reg1 = op, x
		}
	}

	return ins
}

// Encode builds the instruction word from the decoded fields.
// Invalid instructions encode to their raw word.
func Encode(ins Instruction) uint16 {
	x := uint16(ins.Reg1&0xF) << 8
	y := uint16(ins.Reg2&0xF) << 4
	operand := uint16(ins.Operand)

	switch ins.Opcode {
	case Cls:
		return 0x00E0
	case Rts:
		return 0x00EE
	case Jmp:
		return 0x1000 | operand&0x0FFF
	case Jsr:
		return 0x2000 | operand&0x0FFF
	case Mvi:
		return 0xA000 | operand&0x0FFF
	case Jmi:
		return 0xB000 | operand&0x0FFF
	case Rand:
		return 0xC000 | x | operand&0x00FF
	case Sprite:
		return 0xD000 | x | y | operand&0x000F
	case Skpr:
		return 0xE09E | x
	case Skup:
		return 0xE0A1 | x

	case Skeq:
		if ins.HasReg2() {
			return 0x5000 | x | y
		}
		return 0x3000 | x | operand&0x00FF
	case Skne:
		if ins.HasReg2() {
			return 0x9000 | x | y
		}
		return 0x4000 | x | operand&0x00FF
	case Mov:
		if !ins.HasReg2() {
			return 0x6000 | x | operand&0x00FF
		}
	case Add:
		if !ins.HasReg2() {
			return 0x7000 | x | operand&0x00FF
		}
	}

	if low, ok := lowNibbleOf[ins.Opcode]; ok {
		return 0x8000 | x | y | low
	}
	if low, ok := lowByteOf[ins.Opcode]; ok {
		return 0xF000 | x | low
	}
	return ins.Word
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
