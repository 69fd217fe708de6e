package vm

import (
	"fmt"
)

// execute dispatches a decoded instruction. The program counter already
// points at the next sequential instruction.
//
//nolint:cyclop,funlen // one case per operation
func (e *Engine) execute(ins Instruction) error {
	m := e.m
	x, y := ins.X, ins.Y

	switch ins.Op {
	case OpCls:
		m.display = Framebuffer{}
		m.redraw = true

	case OpRet:
		address, err := m.pop()
		if err != nil {
			return err
		}
		m.pc = address

	case OpJp:
		m.pc = ins.NNN

	case OpCall:
		if err := m.push(m.pc); err != nil {
			return err
		}
		m.pc = ins.NNN

	case OpSeImm:
		e.skipIf(m.v[x] == ins.NN)
	case OpSneImm:
		e.skipIf(m.v[x] != ins.NN)
	case OpSeReg:
		e.skipIf(m.v[x] == m.v[y])
	case OpSneReg:
		e.skipIf(m.v[x] != m.v[y])

	case OpLdImm:
		m.v[x] = ins.NN
	case OpAddImm:
		m.v[x] += ins.NN

	case OpLdReg:
		m.v[x] = m.v[y]
	case OpOr:
		m.v[x] |= m.v[y]
	case OpAnd:
		m.v[x] &= m.v[y]
	case OpXor:
		m.v[x] ^= m.v[y]

	case OpAddReg:
		sum := uint16(m.v[x]) + uint16(m.v[y])
		m.v[x] = byte(sum)
		m.setFlag(sum > 0xFF)

	case OpSub:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vx - vy
		m.setFlag(vx >= vy)

	case OpSubn:
		vx, vy := m.v[x], m.v[y]
		m.v[x] = vy - vx
		m.setFlag(vy >= vx)

	case OpShr:
		vy := m.v[y]
		m.v[x] = vy >> 1
		m.v[FlagRegister] = vy & 1

	case OpShl:
		vy := m.v[y]
		m.v[x] = vy << 1
		m.v[FlagRegister] = vy >> 7

	case OpLdI:
		m.i = ins.NNN
	case OpJpV0:
		m.pc = ins.NNN + uint16(m.v[0])
	case OpRnd:
		m.v[x] = e.random() & ins.NN

	case OpDrw:
		return e.draw(m.v[x], m.v[y], ins.N)

	case OpSkp, OpSknp:
		key := m.v[x]
		if int(key) >= KeyCount {
			return fmt.Errorf("reading key %d from register V%X: %w", key, x, ErrKeyIndexOutOfRange)
		}
		pressed := m.keys[key]
		e.skipIf(pressed == (ins.Op == OpSkp))

	case OpLdVxDT:
		m.v[x] = m.delayTimer
	case OpLdVxK:
		key, ok := m.firstPressedKey()
		if !ok {
			m.pc -= instructionSize
			return nil
		}
		m.v[x] = key
	case OpLdDTVx:
		m.delayTimer = m.v[x]
	case OpLdSTVx:
		m.soundTimer = m.v[x]

	case OpAddI:
		m.i += uint16(m.v[x])
	case OpLdF:
		m.i = uint16(m.v[x]) * glyphSize
	case OpLdB:
		return e.storeBCD(m.v[x])
	case OpLdIVx:
		return e.storeRegisters(int(x))
	case OpLdVxI:
		return e.loadRegisters(int(x))

	default:
		return &OpcodeError{Word: ins.Word}
	}
	return nil
}

// skipIf skips the next instruction if the condition is met.
func (e *Engine) skipIf(condition bool) {
	if condition {
		e.m.pc += instructionSize
	}
}

// setFlag stores a boolean flag in VF. It is written after the result
// register so that the flag wins when the result register is VF.
func (m *Machine) setFlag(set bool) {
	if set {
		m.v[FlagRegister] = 1
	} else {
		m.v[FlagRegister] = 0
	}
}

// draw XORs a sprite of the given height read from I onto the display at
// (vx mod 64, vy mod 32). Pixels beyond the right or bottom edge are
// clipped. VF is set when any pixel is turned off.
func (e *Engine) draw(vx, vy, height byte) error {
	m := e.m
	sprite, err := m.memoryRange(m.i, int(height))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	originX := int(vx) % ScreenWidth
	originY := int(vy) % ScreenHeight
	m.v[FlagRegister] = 0

	for row, bits := range sprite {
		py := originY + row
		if py >= ScreenHeight {
			break
		}

		for col := range spriteWidth {
			px := originX + col
			if px >= ScreenWidth {
				break
			}
			if bits&(0x80>>col) == 0 {
				continue
			}

			if m.display[py][px] {
				m.v[FlagRegister] = 1
			}
			m.display[py][px] = !m.display[py][px]
		}
	}

	m.redraw = true
	return nil
}

// storeBCD writes the hundreds, tens and units digits of value to I..I+2.
func (e *Engine) storeBCD(value byte) error {
	m := e.m
	digits, err := m.memoryRange(m.i, 3)
	if err != nil {
		return fmt.Errorf("storing bcd: %w", err)
	}

	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

// storeRegisters writes V0..Vx to memory at I and advances I by x+1.
func (e *Engine) storeRegisters(x int) error {
	m := e.m
	dst, err := m.memoryRange(m.i, x+1)
	if err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}

	copy(dst, m.v[:x+1])
	m.i += uint16(x + 1)
	return nil
}

// loadRegisters reads V0..Vx from memory at I and advances I by x+1.
func (e *Engine) loadRegisters(x int) error {
	m := e.m
	src, err := m.memoryRange(m.i, x+1)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}

	copy(m.v[:x+1], src)
	m.i += uint16(x + 1)
	return nil
}
