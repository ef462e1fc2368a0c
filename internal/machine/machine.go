// Package machine contains the CHIP-8 machine state and the memory level helpers
// that operate on it: image loading, instruction fetch and font installation.
package machine

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
//
// The display buffer (64x32 pixels) and stack are maintained
// separately from the 4KB main memory address space.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// AddressMask masks any address into the implemented memory range.
	AddressMask = MemorySize - 1

	// ProgramStart is the memory address where program images are loaded
	// and where execution begins.
	ProgramStart = 0x200

	// MaxImageSize is the largest program image that fits into memory.
	MaxImageSize = MemorySize - ProgramStart
)

// Register file and call stack dimensions.
const (
	RegisterCount = 16
	FlagRegister  = 0xF
	StackSize     = 16
	KeyCount      = 16
)

// Display dimensions. Pixels are packed 8 per byte, most significant bit first.
const (
	ScreenWidth     = 64
	ScreenHeight    = 32
	PixelCount      = ScreenWidth * ScreenHeight
	FramebufferSize = PixelCount / 8
)

// State is the complete mutable state of a CHIP-8 machine.
// All fields are fixed size arrays, the state never reallocates.
type State struct {
	Memory    [MemorySize]byte
	Registers [RegisterCount]uint8
	Index     uint16
	PC        uint16

	Stack        [StackSize]uint16
	StackPointer uint8

	DelayTimer uint8
	SoundTimer uint8

	Framebuffer [FramebufferSize]byte
	Keys        [KeyCount]bool
}

// New returns a zeroed machine state with the program counter set to the
// program load address.
func New() *State {
	return &State{
		PC: ProgramStart,
	}
}

// Load copies a raw program image verbatim into memory at ProgramStart.
// An empty image is valid and leaves memory untouched.
func (s *State) Load(image []byte) error {
	if len(image) > MaxImageSize {
		return fmt.Errorf("image size %d exceeds available program memory of %d bytes", len(image), MaxImageSize)
	}
	copy(s.Memory[ProgramStart:], image)
	return nil
}

// Fetch reads the big-endian instruction word at the program counter and
// advances the program counter by 2, wrapping at 16 bits.
func (s *State) Fetch() uint16 {
	hi := s.Memory[s.PC&AddressMask]
	lo := s.Memory[(s.PC+1)&AddressMask]
	s.PC += 2
	return uint16(hi)<<8 | uint16(lo)
}

// ReadMemory reads a byte, the address wraps around the memory size.
func (s *State) ReadMemory(address uint16) byte {
	return s.Memory[address&AddressMask]
}

// WriteMemory writes a byte, the address wraps around the memory size.
func (s *State) WriteMemory(address uint16, value byte) {
	s.Memory[address&AddressMask] = value
}

// Pixel returns whether the pixel at the given column and row is set.
func (s *State) Pixel(col, row int) bool {
	return PixelSet(s.Framebuffer[:], col, row)
}

// PixelSet returns whether the pixel at the given column and row is set in a
// packed framebuffer.
func PixelSet(buffer []byte, col, row int) bool {
	return buffer[8*row+col/8]&(1<<(7-col%8)) != 0
}
