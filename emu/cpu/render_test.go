package cpu

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRender(t *testing.T) {
	emu, _, _, _ := newTestEMU(t)
	emu.display[0][1] = true
	emu.display[Height-1][Width-1] = true

	frame := emu.Render()
	assert.Len(t, frame, FrameSize)

	assert.True(t, bytes.Equal([]byte{0x00, 0xF0, 0x00, 0xFF}, frame[0:4]))
	assert.True(t, bytes.Equal([]byte{0xFF, 0xFF, 0xFF, 0xFF}, frame[4:8]))
	assert.True(t, bytes.Equal([]byte{0x00, 0xF0, 0x00, 0xFF}, frame[Width*4:Width*4+4]))
	assert.True(t, bytes.Equal([]byte{0xFF, 0xFF, 0xFF, 0xFF}, frame[FrameSize-4:]))

	again := emu.Render()
	assert.True(t, bytes.Equal(frame, again))

	into := make([]byte, FrameSize)
	emu.RenderInto(into)
	assert.True(t, bytes.Equal(frame, into))
}

func TestHeldKey(t *testing.T) {
	var key HeldKey

	_, held := key.Get()
	assert.False(t, held)

	key.Press(0x3)
	key.Press(0xA)
	k, held := key.Get()
	assert.True(t, held)
	assert.Equal(t, uint8(0xA), k)

	key.Release()
	_, held = key.Get()
	assert.False(t, held)
}
