// Package options contains the program options.
package options

// Renderer names.
const (
	RendererText = "text"
	RendererGUI  = "gui"
	RendererNone = "none"
)

// Default host configuration.
const (
	DefaultFPS                  = 60
	DefaultInstructionsPerFrame = 20
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input program image file"`
}

// Flags contains behavior options.
type Flags struct {
	Demo     bool   `flag:"demo" usage:"run the embedded demo image instead of a file"`
	Renderer string `flag:"r" usage:"renderer: text, gui, none" default:"text"`
	NoFont   bool   `flag:"nofont" usage:"do not install the hex digit font into interpreter memory"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies debug"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Machine contains the host configuration of the virtual machine.
type Machine struct {
	FPS                  int    `flag:"fps" usage:"target frame rate" default:"60"`
	InstructionsPerFrame int    `flag:"ipf" usage:"instructions executed per frame" default:"20"`
	Frames               int    `flag:"frames" usage:"stop after the given number of frames, 0 runs until interrupted"`
	Seed                 uint64 `flag:"seed" usage:"random number generator seed, 0 uses a time based seed"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Machine
}

// Listing options of the disassembler tool.
type Listing struct {
	Input  string
	Output string

	NoHexComments bool
	NoOffsets     bool
	Quiet         bool
	Verify        bool
}
