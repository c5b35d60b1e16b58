package cpu

// FrameSize is the byte length of a rendered RGBA frame.
const FrameSize = Width * Height * 4

var (
	onColor  = [4]uint8{0xFF, 0xFF, 0xFF, 0xFF}
	offColor = [4]uint8{0x00, 0xF0, 0x00, 0xFF}
)

// Render returns the display as row-major RGBA pixels.
func (emu *EMU) Render() []byte {
	frame := make([]byte, FrameSize)
	emu.RenderInto(frame)
	return frame
}

// RenderInto writes the display into dst, which must hold FrameSize bytes.
func (emu *EMU) RenderInto(dst []byte) {
	_ = dst[FrameSize-1]

	offset := 0
	for y := range emu.display {
		for _, lit := range emu.display[y] {
			color := &offColor
			if lit {
				color = &onColor
			}
			copy(dst[offset:offset+4], color[:])
			offset += 4
		}
	}
}
