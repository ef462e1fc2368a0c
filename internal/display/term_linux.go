//go:build linux

package display

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// enterRawMode disables line buffering and echo on the terminal referenced
// by fd. The returned function restores the previous mode.
func enterRawMode(fd int) (func() error, error) {
	old, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("getting terminal attributes: %w", err)
	}

	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("setting terminal attributes: %w", err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, old)
	}, nil
}
