package vm

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Op identifies the operation of a decoded instruction.
type Op int

// Operations of the CHIP-8 instruction set. OpUnknown marks words that match
// no operation.
const (
	OpUnknown      Op = iota
	OpCls             // 00E0
	OpRet             // 00EE
	OpJp              // 1NNN
	OpCall            // 2NNN
	OpSeImm           // 3XNN
	OpSneImm          // 4XNN
	OpSeReg           // 5XY0
	OpLdImm           // 6XNN
	OpAddImm          // 7XNN
	OpLdReg           // 8XY0
	OpOr              // 8XY1
	OpAnd             // 8XY2
	OpXor             // 8XY3
	OpAddReg          // 8XY4
	OpSub             // 8XY5
	OpShr             // 8XY6
	OpSubn            // 8XY7
	OpShl             // 8XYE
	OpSneReg          // 9XY0
	OpLdI             // ANNN
	OpJpV0            // BNNN
	OpRnd             // CXNN
	OpDrw             // DXYN
	OpSkp             // EX9E
	OpSknp            // EXA1
	OpLdVxDT          // FX07
	OpLdVxK           // FX0A
	OpLdDTVx          // FX15
	OpLdSTVx          // FX18
	OpAddI            // FX1E
	OpLdF             // FX29
	OpLdB             // FX33
	OpLdIVx           // FX55
	OpLdVxI           // FX65
)

// patterns holds the opcode table value of every operation. The matching
// entry of the retrogolib CHIP-8 opcode table provides the mnemonic. 0NNN
// machine code calls have no pattern and stay unknown.
var patterns = [...]uint16{
	OpCls:    0x00E0,
	OpRet:    0x00EE,
	OpJp:     0x1000,
	OpCall:   0x2000,
	OpSeImm:  0x3000,
	OpSneImm: 0x4000,
	OpSeReg:  0x5000,
	OpLdImm:  0x6000,
	OpAddImm: 0x7000,
	OpLdReg:  0x8000,
	OpOr:     0x8001,
	OpAnd:    0x8002,
	OpXor:    0x8003,
	OpAddReg: 0x8004,
	OpSub:    0x8005,
	OpShr:    0x8006,
	OpSubn:   0x8007,
	OpShl:    0x800E,
	OpSneReg: 0x9000,
	OpLdI:    0xA000,
	OpJpV0:   0xB000,
	OpRnd:    0xC000,
	OpDrw:    0xD000,
	OpSkp:    0xE09E,
	OpSknp:   0xE0A1,
	OpLdVxDT: 0xF007,
	OpLdVxK:  0xF00A,
	OpLdDTVx: 0xF015,
	OpLdSTVx: 0xF018,
	OpAddI:   0xF01E,
	OpLdF:    0xF029,
	OpLdB:    0xF033,
	OpLdIVx:  0xF055,
	OpLdVxI:  0xF065,
}

var (
	opsByPattern = make(map[uint16]Op, len(patterns))
	instructions [len(patterns)]*chip8.Instruction
)

func init() {
	for op, pattern := range patterns {
		if Op(op) != OpUnknown {
			opsByPattern[pattern] = Op(op)
		}
	}

	for _, opcodes := range chip8.Opcodes {
		for _, opcode := range opcodes {
			if op, ok := opsByPattern[opcode.Info.Value]; ok {
				instructions[op] = opcode.Instruction
			}
		}
	}
}

// String returns the lowercase mnemonic of the operation.
func (op Op) String() string {
	if op <= OpUnknown || int(op) >= len(instructions) || instructions[op] == nil {
		return "unknown"
	}
	return instructions[op].Name
}

// Instruction is a decoded instruction word. Every field is extracted for
// every word, the operation determines which of them are meaningful.
type Instruction struct {
	Op   Op
	Word uint16

	X   byte   // register index in bits 8-11
	Y   byte   // register index in bits 4-7
	N   byte   // low nibble, sprite height for drw
	NN  byte   // 8-bit immediate
	NNN uint16 // 12-bit address
}

// Decode splits an instruction word into its fields and identifies the
// operation. Words without a matching operation decode to OpUnknown.
func Decode(word uint16) Instruction {
	return Instruction{
		Op:   decodeOp(word),
		Word: word,
		X:    byte(word>>8) & 0xF,
		Y:    byte(word>>4) & 0xF,
		N:    byte(word) & 0xF,
		NN:   byte(word),
		NNN:  word & 0xFFF,
	}
}

// Valid returns whether the instruction matched a known operation.
func (ins Instruction) Valid() bool {
	return ins.Op != OpUnknown
}

// decodeOp looks up the word in the opcode table bucket of its first nibble.
// Table entries without a supported operation are skipped.
func decodeOp(word uint16) Op {
	firstNibble := (word & 0xF000) >> 12
	for _, opcode := range chip8.Opcodes[int(firstNibble)] {
		if opcode.Info.Mask&word != opcode.Info.Value {
			continue
		}
		if op, ok := opsByPattern[opcode.Info.Value]; ok {
			return op
		}
	}
	return OpUnknown
}
