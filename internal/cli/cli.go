// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && !opts.Demo) {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// ParseListingFlags parses the command line flags of the disassembler tool.
func ParseListingFlags() (options.Listing, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Listing
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output offsets in comments")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the disassembled instructions encode to the input")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags, usage: "chip8disasm [options] <file to disassemble>"}
	}
	if err := validateArgs(args); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
	usage string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	usage := e.usage
	if usage == "" {
		usage = "retrochip8 [options] <program image>"
	}
	fmt.Printf("usage: %s\n\n", usage)
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// IsUsageError returns true if the error asks for usage information.
func IsUsageError(err error) (*UsageError, bool) {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return usageErr, true
	}
	return nil, false
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program image, please pass the program image as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Renderer = strings.ToLower(opts.Renderer)
	if opts.Trace {
		opts.Debug = true
	}

	if opts.FPS <= 0 {
		return fmt.Errorf("invalid frame rate %d, must be positive", opts.FPS)
	}
	if opts.InstructionsPerFrame <= 0 {
		return fmt.Errorf("invalid instructions per frame %d, must be positive", opts.InstructionsPerFrame)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame limit %d, must not be negative", opts.Frames)
	}

	validRenderers := []string{options.RendererText, options.RendererGUI, options.RendererNone}
	for _, valid := range validRenderers {
		if opts.Renderer == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported renderer: %s. Valid options: %s",
		opts.Renderer, strings.Join(validRenderers, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program image file")
	flags.BoolVar(&opts.Demo, "demo", false, "run the embedded demo image instead of a file")
	flags.StringVar(&opts.Renderer, "r", options.RendererText, "renderer for the display (text/gui/none)")
	flags.BoolVar(&opts.NoFont, "nofont", false, "do not install the hex digit font into interpreter memory")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.IntVar(&opts.FPS, "fps", options.DefaultFPS, "target frame rate")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", options.DefaultInstructionsPerFrame, "instructions executed per frame")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until interrupted")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number generator seed, 0 uses a time based seed")
}
