package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	keyMap := DefaultKeyMap()

	seen := map[uint8]bool{}
	for _, hex := range keyMap {
		seen[hex] = true
	}
	assert.Len(t, seen, 16)

	assert.Equal(t, uint8(0x4), keyMap['q'])
	assert.Equal(t, uint8(0x4), keyMap['Q'])
	assert.Equal(t, uint8(0xC), keyMap['4'])
	assert.Equal(t, uint8(0x0), keyMap['x'])
}

func TestTerminal_Poll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		quit  bool
		held  bool
		key   uint8
	}{
		{"no input", "", false, false, 0},
		{"single key", "w", false, true, 0x5},
		{"last key wins", "1Vz", false, true, 0xA},
		{"unmapped ignored", "p", false, false, 0},
		{"escape quits", "a\x1b", true, true, 0x7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := New(strings.NewReader(tt.input), &bytes.Buffer{}, DefaultKeyMap())
			var key cpu.HeldKey

			assert.Equal(t, tt.quit, term.Poll(&key))
			k, held := key.Get()
			assert.Equal(t, tt.held, held)
			assert.Equal(t, tt.key, k)
		})
	}
}

func TestTerminal_Present(t *testing.T) {
	emu, err := cpu.NewEMU(bytes.NewReader([]byte{0xD0, 0x15})) // draw glyph 0 at 0,0
	assert.NoError(t, err)
	_, err = emu.Step(&cpu.HeldKey{}, cpu.NewTimer())
	assert.NoError(t, err)

	var out bytes.Buffer
	term := New(strings.NewReader(""), &out, DefaultKeyMap())
	assert.NoError(t, term.Present(emu.Render()))
	assert.NoError(t, term.Close())

	text := strings.TrimPrefix(out.String(), cursorHome)
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	assert.Len(t, lines, cpu.Height/2)

	// glyph 0 rows: F0 90 90 90 F0
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀█ "))
	assert.True(t, strings.HasPrefix(lines[1], "█  █ "))
	assert.True(t, strings.HasPrefix(lines[2], "▀▀▀▀ "))
	assert.Equal(t, strings.Repeat(" ", cpu.Width), lines[3])
}
