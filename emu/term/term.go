// Package term implements a frontend that draws the display with Unicode
// half blocks and reads keys from a raw-mode terminal.
package term

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/beanboi7/chyp8/emu/cpu"
)

const (
	escape      = 0x1B
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// KeyMap binds input bytes to hex keys.
type KeyMap map[byte]uint8

// DefaultKeyMap returns the QWERTY layout used by the window frontend,
// accepting both letter cases.
func DefaultKeyMap() KeyMap {
	layout := [16]byte{
		0x0: 'x', 0x1: '1', 0x2: '2', 0x3: '3',
		0x4: 'q', 0x5: 'w', 0x6: 'e', 0x7: 'a',
		0x8: 's', 0x9: 'd', 0xA: 'z', 0xB: 'c',
		0xC: '4', 0xD: 'r', 0xE: 'f', 0xF: 'v',
	}

	keyMap := make(KeyMap, 2*len(layout))
	for hex, b := range layout {
		keyMap[b] = uint8(hex)
		if b >= 'a' && b <= 'z' {
			keyMap[b-'a'+'A'] = uint8(hex)
		}
	}
	return keyMap
}

type Terminal struct {
	in     io.Reader
	out    io.Writer
	keyMap KeyMap
	buf    []byte
	text   bytes.Buffer
	close  func() error
}

// New returns a terminal frontend over in and out. The caller is
// responsible for any terminal mode changes.
func New(in io.Reader, out io.Writer, keyMap KeyMap) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		keyMap: keyMap,
		buf:    make([]byte, 64),
	}
}

// Poll consumes pending input bytes. The last mapped key wins; Escape
// requests quit.
func (t *Terminal) Poll(key *cpu.HeldKey) bool {
	n, err := t.in.Read(t.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return true
	}

	for _, b := range t.buf[:n] {
		if b == escape {
			return true
		}
		if hex, ok := t.keyMap[b]; ok {
			key.Press(hex)
		}
	}
	return false
}

// Present draws the frame, two display rows per text line.
func (t *Terminal) Present(frame []byte) error {
	t.text.Reset()
	t.text.WriteString(cursorHome)
	renderText(&t.text, frame)

	if _, err := t.out.Write(t.text.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close restores the terminal if Open changed it.
func (t *Terminal) Close() error {
	if t.close == nil {
		return nil
	}
	return t.close()
}

func renderText(buf *bytes.Buffer, frame []byte) {
	lit := func(x, y int) bool {
		return frame[(y*cpu.Width+x)*4] == 0xFF
	}

	for y := 0; y < cpu.Height; y += 2 {
		for x := 0; x < cpu.Width; x++ {
			upper, lower := lit(x, y), lit(x, y+1)
			switch {
			case upper && lower:
				buf.WriteRune('█')
			case upper:
				buf.WriteRune('▀')
			case lower:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\r\n")
	}
}
