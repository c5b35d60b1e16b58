package cpu

import "math/rand/v2"

// RandomSource supplies bytes for the Cxkk instruction.
type RandomSource interface {
	RandomByte() uint8
}

type mathRandom struct{}

// NewRandomSource returns a uniform, randomly seeded byte source.
func NewRandomSource() RandomSource {
	return mathRandom{}
}

func (mathRandom) RandomByte() uint8 {
	return uint8(rand.Uint32())
}
