package vm

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Hexadecimal glyph sprites (16 glyphs x 5 bytes)
//	0x050-0x1FF: Reserved, unused by this interpreter
//	0x200-0xFFF: Program image
//
// The display buffer, the call stack and the keypad are kept outside of the
// addressable memory.
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 0x1000

	// ProgramStart is the address the program image is loaded to and where
	// execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// FlagRegister is the index of the register used for carry, borrow and
	// collision flags.
	FlagRegister = 0xF

	// StackSize is the maximum call depth.
	StackSize = 16

	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16

	// ScreenWidth is the framebuffer width in pixels.
	ScreenWidth = 64

	// ScreenHeight is the framebuffer height in pixels.
	ScreenHeight = 32

	// instructionSize is the size of every CHIP-8 instruction in bytes.
	instructionSize = 2

	// glyphSize is the number of bytes per hexadecimal glyph sprite.
	glyphSize = 5

	// spriteWidth is the fixed pixel width of a sprite row.
	spriteWidth = 8
)
