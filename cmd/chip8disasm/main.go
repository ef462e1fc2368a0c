// Package main implements a CHIP-8 program image disassembler
package main

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/fileprocessor"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseListingFlags()
	if err != nil {
		if usageErr, ok := cli.IsUsageError(err); ok {
			printBanner()
			usageErr.ShowUsage()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}

	// the listing is written to stdout if no output file is given
	logger := config.CreateLogger(false, opts.Quiet || opts.Output == "")
	if !opts.Quiet && opts.Output != "" {
		printBanner()
	}

	if err := fileprocessor.ProcessFile(logger, opts); err != nil {
		logger.Error("Disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println("[-----------------------------------]")
	fmt.Println("[ chip8disasm - CHIP-8 disassembler ]")
	fmt.Printf("[-----------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
