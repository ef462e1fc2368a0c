package instruction

// Opcode identifies the operation of a decoded instruction.
type Opcode int

// Opcodes of the supported CHIP-8 instruction set. The zero value is Invalid.
const (
	Invalid Opcode = iota
	Cls
	Rts
	Jmp
	Jsr
	Jmi
	Skeq
	Skne
	Mov
	Add
	Or
	And
	Xor
	Sub
	Shr
	Shl
	Rsb
	Mvi
	Rand
	Sprite
	Skpr
	Skup
	Gdelay
	Key
	Sdelay
	Ssound
	Adi
	Font
	Bcd
	Str
	Ldr

	opcodeCount
)

var opcodeNames = [opcodeCount]string{
	Invalid: "invalid",
	Cls:     "cls",
	Rts:     "rts",
	Jmp:     "jmp",
	Jsr:     "jsr",
	Jmi:     "jmi",
	Skeq:    "skeq",
	Skne:    "skne",
	Mov:     "mov",
	Add:     "add",
	Or:      "or",
	And:     "and",
	Xor:     "xor",
	Sub:     "sub",
	Shr:     "shr",
	Shl:     "shl",
	Rsb:     "rsb",
	Mvi:     "mvi",
	Rand:    "rand",
	Sprite:  "sprite",
	Skpr:    "skpr",
	Skup:    "skup",
	Gdelay:  "gdelay",
	Key:     "key",
	Sdelay:  "sdelay",
	Ssound:  "ssound",
	Adi:     "adi",
	Font:    "font",
	Bcd:     "bcd",
	Str:     "str",
	Ldr:     "ldr",
}

// String returns the mnemonic of the opcode.
func (o Opcode) String() string {
	if o < 0 || o >= opcodeCount {
		return opcodeNames[Invalid]
	}
	return opcodeNames[o]
}

// aluOpcodes maps the low nibble of the 8XYN register arithmetic family.
var aluOpcodes = map[uint16]Opcode{
	0x0: Mov,
	0x1: Or,
	0x2: And,
	0x3: Xor,
	0x4: Add,
	0x5: Sub,
	0x6: Shr,
	0x7: Rsb,
	0xE: Shl,
}

// miscOpcodes maps the low byte of the FXNN timer, register transfer and
// memory family.
var miscOpcodes = map[uint16]Opcode{
	0x07: Gdelay,
	0x0A: Key,
	0x15: Sdelay,
	0x18: Ssound,
	0x1E: Adi,
	0x29: Font,
	0x33: Bcd,
	0x55: Str,
	0x65: Ldr,
}

// lowNibbleOf and lowByteOf are the reverse lookups used by Encode.
var (
	lowNibbleOf = reverse(aluOpcodes)
	lowByteOf   = reverse(miscOpcodes)
)

func reverse(m map[uint16]Opcode) map[Opcode]uint16 {
	r := make(map[Opcode]uint16, len(m))
	for k, v := range m {
		r[v] = k
	}
	return r
}
