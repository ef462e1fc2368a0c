// Package app provides the application helpers shared by the commands.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	archsys "github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the application name and version information.
func PrintBanner(logger *log.Logger, name, version, commit, date string) {
	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info(name, log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the program image to run.
func PrintInfo(logger *log.Logger, opts options.Program, image []byte) {
	if opts.Quiet {
		return
	}

	input := opts.Input
	if opts.Demo {
		input = "demo"
	}

	logger.Info("Running "+systemName(archsys.CHIP8System)+" program",
		log.String("file", input),
		log.Int("size", len(image)),
		log.String("renderer", opts.Renderer),
		log.Int("fps", opts.FPS),
		log.Int("ipf", opts.InstructionsPerFrame),
	)
}

func systemName(system archsys.System) string {
	switch system {
	case archsys.CHIP8System:
		return "Chip-8"
	default:
		return fmt.Sprint(system)
	}
}
