package machine

// FontStart is the address of the first hex digit glyph.
const FontStart = 0x000

// GlyphSize is the size of a single hex digit glyph in bytes.
const GlyphSize = 5

// font contains the 4x5 pixel glyphs of the hex digits 0-F.
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// LoadFont installs the hex digit glyphs into the reserved interpreter area.
func (s *State) LoadFont() {
	copy(s.Memory[FontStart:], font[:])
}

// GlyphAddress returns the memory address of the glyph for the low nibble of digit.
func GlyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0x0F)*GlyphSize
}

// PressKey marks a key of the hex keypad as pressed.
func (s *State) PressKey(key uint8) {
	s.Keys[key&0x0F] = true
}

// ReleaseKeys marks all keys as released.
func (s *State) ReleaseKeys() {
	s.Keys = [KeyCount]bool{}
}

// PressedKey returns the lowest pressed key.
func (s *State) PressedKey() (uint8, bool) {
	for i, pressed := range s.Keys {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}
