// Package loader handles program image loading operations.
package loader

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// demoImage is a maze generator that draws random diagonal lines until the
// screen is filled and then loops forever.
const demoImage = "YABhAKIiwgEyAaIe0BRwBDBAEgRgAHEEMSASBBIcgEAgECBAgBA="

// Loader handles loading program images.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load returns the program image selected by the options, either the
// embedded demo image or the content of the input file.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	if opts.Demo {
		return Demo()
	}
	return l.LoadFile(opts.Input)
}

// LoadFile reads the program image from the given file.
func (l *Loader) LoadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a raw program image. Images that do not fit into the
// program memory are rejected.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(io.LimitReader(reader, machine.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(image) > machine.MaxImageSize {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", machine.MaxImageSize)
	}
	return image, nil
}

// Demo returns the embedded demo image.
func Demo() ([]byte, error) {
	image, err := base64.StdEncoding.DecodeString(demoImage)
	if err != nil {
		return nil, fmt.Errorf("decoding demo image: %w", err)
	}
	return image, nil
}
