package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load image file", func(t *testing.T) {
		data := []byte{0x60, 0x0A, 0x12, 0x02}
		opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, data)}}

		image, err := New().Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, image)
	})

	t.Run("load empty image file", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, nil)}}

		image, err := New().Load(opts)
		assert.NoError(t, err)
		assert.Len(t, image, 0)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: "/nonexistent/file.ch8"}}

		_, err := New().Load(opts)
		assert.Error(t, err)
		assert.ErrorContains(t, err, "/nonexistent/file.ch8")
	})

	t.Run("error on too large file", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, make([]byte, machine.MaxImageSize+1))}}

		_, err := New().Load(opts)
		assert.Error(t, err)
	})

	t.Run("demo ignores input", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
			Flags:      options.Flags{Demo: true},
		}

		image, err := New().Load(opts)
		assert.NoError(t, err)
		assert.NotEmpty(t, image)
	})
}

func TestLoadFromReader(t *testing.T) {
	data := make([]byte, machine.MaxImageSize)
	data[len(data)-1] = 0xAA

	image, err := New().LoadFromReader(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Len(t, image, machine.MaxImageSize)
	assert.Equal(t, byte(0xAA), image[len(image)-1])
}

func TestDemo(t *testing.T) {
	image, err := Demo()
	assert.NoError(t, err)
	assert.Len(t, image, 38)
	// mov v0 0, mov v1 0
	assert.Equal(t, []byte{0x60, 0x00, 0x61, 0x00}, image[:4])
}
