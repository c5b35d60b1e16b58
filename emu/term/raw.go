//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// rawMode puts the terminal on fd into non-canonical, non-echoing mode with
// non-blocking reads and returns the settings to restore afterwards.
func rawMode(fd int) (*unix.Termios, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("reading terminal settings: %w", err)
	}

	restore := *termios
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 0
	termstate.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termstate); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &restore, nil
}

func restoreMode(fd int, termios *unix.Termios) error {
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return fmt.Errorf("restoring terminal settings: %w", err)
	}
	return nil
}

// Open switches stdin to raw mode and returns a terminal frontend writing
// to stdout. Close must be called to restore the terminal.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	restore, err := rawMode(fd)
	if err != nil {
		return nil, err
	}

	t := New(os.Stdin, os.Stdout, DefaultKeyMap())
	t.close = func() error {
		_, _ = t.out.Write([]byte(showCursor))
		return restoreMode(fd, restore)
	}
	_, _ = t.out.Write([]byte(clearScreen + hideCursor))
	return t, nil
}
