// Package fileprocessor handles the file based disassembly workflow
package fileprocessor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the input image and writes its listing to the output
// file, or to stdout if no output file is set.
func ProcessFile(logger *log.Logger, opts options.Listing) error {
	image, err := loader.New().LoadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() { _ = writer.Close() }()

	listingOptions := disasm.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
	}
	if err := disasm.Listing(writer, image, listingOptions); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	if opts.Verify {
		if err := verification.VerifyImage(logger, image); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Info("Verification successful")
	}

	if opts.Output != "" {
		logger.Info("Listing written",
			log.String("file", opts.Output),
			log.Int("size", len(image)))
	}
	return nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

func createWriter(opts options.Listing) (io.WriteCloser, error) {
	if opts.Output == "" {
		return &nopCloser{os.Stdout}, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// nopCloser wraps an io.Writer to add a no-op Close method
type nopCloser struct {
	io.Writer
}

func (nc *nopCloser) Close() error {
	return nil
}
