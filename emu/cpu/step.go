package cpu

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// flow tells the step driver how to move pc after an instruction.
type flow uint8

const (
	flowNext flow = iota // pc += 2, timers tick
	flowSkip             // pc += 4, timers tick
	flowJump             // pc = target, no timer tick
	flowWait             // pc unchanged, no timer tick
)

type result struct {
	flow   flow
	target uint16
	drawn  bool
}

var (
	next = result{flow: flowNext}
	wait = result{flow: flowWait}
)

func skipIf(cond bool) result {
	if cond {
		return result{flow: flowSkip}
	}
	return next
}

func jumpTo(addr uint16) result {
	return result{flow: flowJump, target: addr}
}

// instruction is a decoded 16-bit instruction word.
type instruction struct {
	opcode uint16
	x      uint8  // second nibble, register index
	y      uint8  // third nibble, register index
	n      uint8  // low nibble
	kk     uint8  // low byte
	adr    uint16 // low 12 bits
}

func decode(opcode uint16) instruction {
	return instruction{
		opcode: opcode,
		x:      uint8(opcode >> 8 & 0xF),
		y:      uint8(opcode >> 4 & 0xF),
		n:      uint8(opcode & 0xF),
		kk:     uint8(opcode & 0xFF),
		adr:    opcode & 0xFFF,
	}
}

// Step executes the instruction at pc and reports whether the display
// changed. key is the host's held key and may be cleared by key
// instructions; timer gates the 60 Hz decay of the delay and sound timers.
// A halted machine returns false and a nil error without changing state.
func (emu *EMU) Step(key *HeldKey, timer *Timer) (bool, error) {
	if emu.Halted() {
		return false, nil
	}

	opcode := uint16(emu.memory[emu.pc])<<8 | uint16(emu.memory[emu.pc+1])
	ins := decode(opcode)

	res, err := emu.execute(ins, key)
	if err != nil {
		emu.halted = true
		if emu.logger != nil {
			emu.logger.Debug("Machine halted",
				log.Hex("pc", emu.pc),
				log.Hex("opcode", opcode),
				log.Err(err))
		}
		return false, fmt.Errorf("executing %04X at %03X: %w", opcode, emu.pc, err)
	}

	switch res.flow {
	case flowJump:
		emu.pc = res.target
		return res.drawn, nil
	case flowWait:
		return res.drawn, nil
	case flowSkip:
		emu.pc += 2
	}

	timer.tick(emu)
	emu.pc += 2
	return res.drawn, nil
}

func (emu *EMU) execute(ins instruction, key *HeldKey) (result, error) {
	switch ins.opcode >> 12 {
	case 0x0:
		return emu.system(ins)
	case 0x1:
		return jumpTo(ins.adr), nil
	case 0x2:
		return emu.call(ins)
	case 0x3:
		return skipIf(emu.V[ins.x] == ins.kk), nil
	case 0x4:
		return skipIf(emu.V[ins.x] != ins.kk), nil
	case 0x5:
		return skipIf(emu.V[ins.x] == emu.V[ins.y]), nil
	case 0x6:
		emu.V[ins.x] = ins.kk
		return next, nil
	case 0x7:
		emu.V[ins.x] += ins.kk
		return next, nil
	case 0x8:
		return emu.alu(ins), nil
	case 0x9:
		return skipIf(emu.V[ins.x] != emu.V[ins.y]), nil
	case 0xA:
		emu.I = ins.adr
		return next, nil
	case 0xB:
		return jumpTo(ins.adr + uint16(emu.V[0])), nil
	case 0xC:
		emu.V[ins.x] = ins.kk & emu.random.RandomByte()
		return next, nil
	case 0xD:
		return emu.draw(ins), nil
	case 0xE:
		return emu.keySkip(ins, key), nil
	default: // 0xF
		return emu.misc(ins, key), nil
	}
}

func (emu *EMU) unknown(ins instruction) result {
	if emu.logger != nil {
		emu.logger.Debug("Ignoring unknown opcode",
			log.Hex("pc", emu.pc),
			log.Hex("opcode", ins.opcode))
	}
	return next
}
