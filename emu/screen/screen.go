// Package screen implements the pixelgl window frontend.
package screen

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// KeyMap binds each hex key, by index, to a keyboard button.
type KeyMap [16]pixelgl.Button

// DefaultKeyMap returns the usual QWERTY layout:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
func DefaultKeyMap() KeyMap {
	return KeyMap{
		0x0: pixelgl.KeyX,
		0x1: pixelgl.Key1,
		0x2: pixelgl.Key2,
		0x3: pixelgl.Key3,
		0x4: pixelgl.KeyQ,
		0x5: pixelgl.KeyW,
		0x6: pixelgl.KeyE,
		0x7: pixelgl.KeyA,
		0x8: pixelgl.KeyS,
		0x9: pixelgl.KeyD,
		0xA: pixelgl.KeyZ,
		0xB: pixelgl.KeyC,
		0xC: pixelgl.Key4,
		0xD: pixelgl.KeyR,
		0xE: pixelgl.KeyF,
		0xF: pixelgl.KeyV,
	}
}

type Window struct {
	*pixelgl.Window
	KeyMap KeyMap

	picture *pixel.PictureData
	scale   float64
}

// NewWindow opens a window that shows the display scaled by scale.
// It must be called from within pixelgl.Run.
func NewWindow(title string, scale int, keyMap KeyMap) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(cpu.Width*scale), float64(cpu.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{
		Window:  win,
		KeyMap:  keyMap,
		picture: newPicture(),
		scale:   float64(scale),
	}, nil
}

// Poll reads window events and reports whether the window was closed or
// Escape pressed. A key pressed since the last poll is put into key; if
// none was, a mapped key that is still held is. Ties go to the highest hex
// key.
func (w *Window) Poll(key *cpu.HeldKey) bool {
	w.UpdateInput()
	if w.Closed() || w.JustPressed(pixelgl.KeyEscape) {
		return true
	}

	if hex, ok := w.KeyMap.find(w.JustPressed); ok {
		key.Press(hex)
	} else if hex, ok := w.KeyMap.find(w.Pressed); ok {
		key.Press(hex)
	}
	return false
}

// find returns the highest hex key whose button satisfies pressed.
func (m KeyMap) find(pressed func(pixelgl.Button) bool) (uint8, bool) {
	for hex := len(m) - 1; hex >= 0; hex-- {
		if pressed(m[hex]) {
			return uint8(hex), true
		}
	}
	return 0, false
}

// Present draws an RGBA frame scaled to the window.
func (w *Window) Present(frame []byte) error {
	fillPicture(w.picture, frame)

	sprite := pixel.NewSprite(w.picture, w.picture.Bounds())
	w.Clear(colornames.Black)
	sprite.Draw(w, pixel.IM.Scaled(pixel.ZV, w.scale).Moved(w.Bounds().Center()))
	w.Update()
	return nil
}
