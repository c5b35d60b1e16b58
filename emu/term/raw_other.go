//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import "errors"

// Open is not supported on this platform.
func Open() (*Terminal, error) {
	return nil, errors.New("terminal frontend is not supported on this platform")
}
