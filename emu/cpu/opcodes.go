package cpu

// system handles the 0x0 group: 00E0 and 00EE.
func (emu *EMU) system(ins instruction) (result, error) {
	switch ins.kk {
	case 0xE0:
		emu.display = [Height][Width]bool{}
		return result{flow: flowNext, drawn: true}, nil
	case 0xEE:
		if emu.sp == 0 {
			return result{}, ErrStackUnderflow
		}
		emu.sp--
		return jumpTo(emu.stack[emu.sp]), nil
	default:
		return emu.unknown(ins), nil
	}
}

func (emu *EMU) call(ins instruction) (result, error) {
	if int(emu.sp) >= StackDepth {
		return result{}, ErrStackOverflow
	}
	emu.stack[emu.sp] = emu.pc + 2
	emu.sp++
	return jumpTo(ins.adr), nil
}

// alu handles the 0x8 group. Operands are copied before the result is
// written, and VF is always written last so the flag survives x == 0xF.
func (emu *EMU) alu(ins instruction) result {
	vx, vy := emu.V[ins.x], emu.V[ins.y]

	var value, flag uint8
	setFlag := true

	switch ins.n {
	case 0x0:
		value, setFlag = vy, false
	case 0x1:
		value, setFlag = vx|vy, false
	case 0x2:
		value, setFlag = vx&vy, false
	case 0x3:
		value, setFlag = vx^vy, false
	case 0x4:
		sum := uint16(vx) + uint16(vy)
		value = uint8(sum)
		flag = uint8(sum >> 8)
	case 0x5:
		value = vx - vy
		flag = boolToFlag(vx >= vy)
	case 0x6:
		value = vy >> 1
		flag = vy & 1
	case 0x7:
		value = vy - vx
		flag = boolToFlag(vy >= vx)
	case 0xE:
		value = vy << 1
		flag = vy >> 7
	default:
		return emu.unknown(ins)
	}

	emu.V[ins.x] = value
	if setFlag {
		emu.V[RegisterF] = flag
	}
	return next
}

// draw XORs an n-row sprite from memory at I onto the display. Pixels past
// the right or bottom edge are clipped.
func (emu *EMU) draw(ins instruction) result {
	originX := int(emu.V[ins.x] % Width)
	originY := int(emu.V[ins.y] % Height)
	collision := false

	for row := 0; row < int(ins.n); row++ {
		y := originY + row
		if y >= Height {
			break
		}
		sprite := emu.read(emu.I + uint16(row))

		for col := 0; col < 8; col++ {
			x := originX + col
			if x >= Width {
				break
			}
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if emu.display[y][x] {
				collision = true
			}
			emu.display[y][x] = !emu.display[y][x]
		}
	}

	emu.V[RegisterF] = boolToFlag(collision)
	return result{flow: flowNext, drawn: true}
}

// keySkip handles Ex9E and ExA1. A key that causes a skip is consumed.
func (emu *EMU) keySkip(ins instruction, key *HeldKey) result {
	vx := emu.V[ins.x]
	held, ok := key.Get()

	switch ins.kk {
	case 0x9E:
		if ok && held == vx {
			key.Release()
			return skipIf(true)
		}
		return next
	case 0xA1:
		if !ok {
			return skipIf(true)
		}
		if held != vx {
			key.Release()
			return skipIf(true)
		}
		return next
	default:
		return emu.unknown(ins)
	}
}

// misc handles the 0xF group.
func (emu *EMU) misc(ins instruction, key *HeldKey) result {
	vx := emu.V[ins.x]

	switch ins.kk {
	case 0x07:
		emu.V[ins.x] = emu.delayTimer
	case 0x0A:
		held, ok := key.Get()
		if !ok {
			return wait
		}
		emu.V[ins.x] = held
		key.Release()
	case 0x15:
		emu.delayTimer = vx
	case 0x18:
		emu.soundTimer = vx
	case 0x1E:
		emu.I += uint16(vx)
	case 0x29:
		emu.I = 5 * uint16(vx)
	case 0x33:
		emu.write(emu.I, vx/100)
		emu.write(emu.I+1, vx/10%10)
		emu.write(emu.I+2, vx%10)
	case 0x55:
		for i := uint16(0); i <= uint16(ins.x); i++ {
			emu.write(emu.I+i, emu.V[i])
		}
	case 0x65:
		for i := uint16(0); i <= uint16(ins.x); i++ {
			emu.V[i] = emu.read(emu.I + i)
		}
	default:
		return emu.unknown(ins)
	}
	return next
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
