package screen

import (
	"image/color"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/faiface/pixel"
)

// newPicture returns an empty picture the size of the CHIP-8 display.
func newPicture() *pixel.PictureData {
	return &pixel.PictureData{
		Pix:    make([]color.RGBA, cpu.Width*cpu.Height),
		Stride: cpu.Width,
		Rect:   pixel.R(0, 0, cpu.Width, cpu.Height),
	}
}

// fillPicture copies a top-down RGBA frame into pic. Picture rows run
// bottom-up, so the rows are flipped.
func fillPicture(pic *pixel.PictureData, frame []byte) {
	for y := 0; y < cpu.Height; y++ {
		row := (cpu.Height - 1 - y) * cpu.Width
		for x := 0; x < cpu.Width; x++ {
			offset := (y*cpu.Width + x) * 4
			pic.Pix[row+x] = color.RGBA{
				R: frame[offset],
				G: frame[offset+1],
				B: frame[offset+2],
				A: frame[offset+3],
			}
		}
	}
}
