//go:build !linux

package display

import "errors"

var errRawModeUnsupported = errors.New("raw terminal mode is not supported on this platform")

func enterRawMode(int) (func() error, error) {
	return nil, errRawModeUnsupported
}
