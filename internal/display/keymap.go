package display

// keymap maps keyboard keys to the hex keypad:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  <-  q w e r
//	7 8 9 E      a s d f
//	A 0 B F      z x c v
var keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// keyBufferSize is the number of key presses that can be queued between
// two frames before further presses are dropped.
const keyBufferSize = 16

// sendKey queues a key press without blocking.
func sendKey(keys chan<- uint8, ch rune) {
	key, ok := keymap[ch]
	if !ok {
		return
	}
	select {
	case keys <- key:
	default:
	}
}
