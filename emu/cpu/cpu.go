// Package cpu implements the CHIP-8 interpreter: machine state, the
// fetch-decode-execute step, framebuffer rendering and ROM loading.
package cpu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

const (
	MemorySize   = 0xFFF // addresses 0x000-0xFFE
	ProgramStart = 0x200
	MaxROMSize   = MemorySize - ProgramStart
	StackDepth   = 16
	RegisterF    = 0xF

	// haltAddress is the first pc value that cannot hold a full instruction.
	haltAddress = MemorySize - 1

	Width  = 64
	Height = 32
)

var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// FontSet holds the 16 built-in hex glyphs, 5 bytes each.
var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// EMU is the complete state of one CHIP-8 machine.
type EMU struct {
	memory     [MemorySize]uint8
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    [Height][Width]bool
	delayTimer uint8 //counts down at 60Hz
	soundTimer uint8 //same as above
	stack      [StackDepth]uint16
	sp         uint8 //frames in use
	halted     bool

	random RandomSource
	logger *log.Logger
}

// Option configures an EMU created by NewEMU.
type Option func(*EMU)

// WithRandom sets the byte source used by the Cxkk instruction.
func WithRandom(source RandomSource) Option {
	return func(emu *EMU) {
		emu.random = source
	}
}

// WithLogger enables debug logging of unusual machine events.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}

// NewEMU creates a machine with the font in low memory and the ROM read
// from rom copied to ProgramStart. ROM bytes past MaxROMSize are dropped.
func NewEMU(rom io.Reader, opts ...Option) (*EMU, error) {
	data, err := io.ReadAll(rom)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	emu := &EMU{
		pc:     ProgramStart,
		random: NewRandomSource(),
	}
	for _, opt := range opts {
		opt(emu)
	}

	emu.loadFont()
	emu.loadROM(data)
	return emu, nil
}

// LoadFile opens the ROM at path and creates a machine from it.
func LoadFile(path string, opts ...Option) (*EMU, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM '%s': %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return NewEMU(f, opts...)
}

func (emu *EMU) loadFont() {
	copy(emu.memory[:len(FontSet)], FontSet[:])
}

func (emu *EMU) loadROM(rom []byte) {
	if len(rom) > MaxROMSize {
		if emu.logger != nil {
			emu.logger.Info("ROM truncated to fit memory",
				log.Hex("size", len(rom)),
				log.Hex("max_size", MaxROMSize))
		}
		rom = rom[:MaxROMSize]
	}
	copy(emu.memory[ProgramStart:], rom)
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 { return emu.pc }

// Index returns the I register.
func (emu *EMU) Index() uint16 { return emu.I }

// Register returns the value of register Vx.
func (emu *EMU) Register(x uint8) uint8 { return emu.V[x&0xF] }

func (emu *EMU) DelayTimer() uint8 { return emu.delayTimer }

func (emu *EMU) SoundTimer() uint8 { return emu.soundTimer }

// Halted reports whether the machine stopped executing, either by reaching
// the end of memory or by a stack fault.
func (emu *EMU) Halted() bool {
	return emu.halted || emu.pc >= haltAddress
}

// Pixel reports whether the display cell at column x, row y is lit.
func (emu *EMU) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return emu.display[y][x]
}

// Memory returns the byte at addr, or 0 outside addressable memory.
func (emu *EMU) Memory(addr uint16) uint8 {
	return emu.read(addr)
}

func (emu *EMU) read(addr uint16) uint8 {
	if int(addr) >= MemorySize {
		return 0
	}
	return emu.memory[addr]
}

func (emu *EMU) write(addr uint16, value uint8) {
	if int(addr) >= MemorySize {
		return
	}
	emu.memory[addr] = value
}
