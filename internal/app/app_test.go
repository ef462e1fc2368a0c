package app

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	archsys "github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestSystemName(t *testing.T) {
	assert.Equal(t, "Chip-8", systemName(archsys.CHIP8System))
}

func TestPrintInfo(t *testing.T) {
	logger := log.NewTestLogger(t)

	PrintBanner(logger, "retrochip8", "1.0.0", "0123456789abcdef", "2026-01-01")
	PrintInfo(logger, options.Program{Flags: options.Flags{Demo: true}}, []byte{0x12, 0x00})
	PrintInfo(logger, options.Program{Flags: options.Flags{Quiet: true}}, nil)
}
