package vm

import (
	"fmt"
)

// Framebuffer is the 64x32 monochrome display, indexed by row then column.
type Framebuffer [ScreenHeight][ScreenWidth]bool

// Machine holds the complete mutable interpreter state. Only the Engine
// mutates registers, memory and the display; external collaborators use
// LoadProgram, SetKey and the read accessors.
type Machine struct {
	memory [MemorySize]byte
	v      [RegisterCount]byte
	i      uint16
	pc     uint16

	stack [StackSize]uint16
	sp    int

	delayTimer byte
	soundTimer byte

	display Framebuffer
	redraw  bool

	keys [KeyCount]bool
}

// NewMachine returns a machine in its reset state.
func NewMachine() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Reset zeroes all registers, memory, stack and timers, clears the display
// and keypad and points the program counter at the program start.
// The glyph table is installed by LoadProgram.
func (m *Machine) Reset() {
	*m = Machine{}
	m.pc = ProgramStart
	m.redraw = true
}

// LoadProgram copies a raw program image to ProgramStart and installs the
// glyph table at address 0. Images that do not fit into memory are rejected
// without modifying the machine.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("program of %d bytes exceeds %d bytes of program memory: %w",
			len(program), MaxProgramSize, ErrOutOfMemory)
	}

	copy(m.memory[ProgramStart:], program)
	copy(m.memory[:], glyphs[:])
	return nil
}

// SetKey updates the pressed state of one keypad key.
func (m *Machine) SetKey(index int, pressed bool) error {
	if index < 0 || index >= KeyCount {
		return fmt.Errorf("setting key %d: %w", index, ErrInvalidKeyIndex)
	}
	m.keys[index] = pressed
	return nil
}

// Key returns whether the given key is pressed, out of range keys are never pressed.
func (m *Machine) Key(index int) bool {
	if index < 0 || index >= KeyCount {
		return false
	}
	return m.keys[index]
}

// Framebuffer returns a copy of the display.
func (m *Machine) Framebuffer() Framebuffer {
	return m.display
}

// Pixel returns the state of a display pixel, coordinates outside of the
// display are reported as off.
func (m *Machine) Pixel(x, y int) bool {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		return false
	}
	return m.display[y][x]
}

// Redraw reports whether the display changed since the last call and clears
// the change flag.
func (m *Machine) Redraw() bool {
	changed := m.redraw
	m.redraw = false
	return changed
}

// Registers returns a copy of the V registers.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.v
}

// Register returns the value of register Vx. Out of range indexes return 0.
func (m *Machine) Register(x int) byte {
	if x < 0 || x >= RegisterCount {
		return 0
	}
	return m.v[x]
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.i
}

// PC returns the address of the next instruction to fetch.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SP returns the number of return addresses on the stack.
func (m *Machine) SP() int {
	return m.sp
}

// Stack returns a copy of the active return addresses, oldest first.
func (m *Machine) Stack() []uint16 {
	stack := make([]uint16, m.sp)
	copy(stack, m.stack[:m.sp])
	return stack
}

// DelayTimer returns the current delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SoundTimer returns the current sound timer value. A non-zero value means
// a tone should be audible.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// ReadMemory returns the byte stored at the given address.
func (m *Machine) ReadMemory(address uint16) (byte, error) {
	if int(address) >= MemorySize {
		return 0, fmt.Errorf("reading memory at address %04x: %w", address, ErrMemoryOutOfBounds)
	}
	return m.memory[address], nil
}

// ReadWord returns the big-endian instruction word stored at the given address.
func (m *Machine) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= MemorySize {
		return 0, fmt.Errorf("reading word at address %04x: %w", address, ErrMemoryOutOfBounds)
	}
	return uint16(m.memory[address])<<8 | uint16(m.memory[address+1]), nil
}

// memoryRange returns the memory slice [address, address+length) or an
// error if any part of it lies outside of memory.
func (m *Machine) memoryRange(address uint16, length int) ([]byte, error) {
	end := int(address) + length
	if end > MemorySize {
		return nil, fmt.Errorf("accessing %d bytes at address %04x: %w", length, address, ErrMemoryOutOfBounds)
	}
	return m.memory[address:end], nil
}

// push stores a return address on the call stack.
func (m *Machine) push(address uint16) error {
	if m.sp >= StackSize {
		return fmt.Errorf("calling with %d return addresses on the stack: %w", m.sp, ErrStackOverflow)
	}
	m.stack[m.sp] = address
	m.sp++
	return nil
}

// pop removes the most recent return address from the call stack.
func (m *Machine) pop() (uint16, error) {
	if m.sp == 0 {
		return 0, ErrStackUnderflow
	}
	m.sp--
	return m.stack[m.sp], nil
}

// firstPressedKey returns the lowest pressed key index.
func (m *Machine) firstPressedKey() (byte, bool) {
	for i, pressed := range m.keys {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}
