package vm

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		op   Op
	}{
		{0x00E0, OpCls},
		{0x00EE, OpRet},
		{0x0123, OpUnknown},
		{0x1234, OpJp},
		{0x2345, OpCall},
		{0x3A12, OpSeImm},
		{0x4A12, OpSneImm},
		{0x5AB0, OpSeReg},
		{0x5AB1, OpUnknown},
		{0x6A12, OpLdImm},
		{0x7A12, OpAddImm},
		{0x8AB0, OpLdReg},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddReg},
		{0x8AB5, OpSub},
		{0x8AB6, OpShr},
		{0x8AB7, OpSubn},
		{0x8ABE, OpShl},
		{0x8AB8, OpUnknown},
		{0x9AB0, OpSneReg},
		{0x9AB1, OpUnknown},
		{0xA123, OpLdI},
		{0xB123, OpJpV0},
		{0xCA12, OpRnd},
		{0xDAB5, OpDrw},
		{0xEA9E, OpSkp},
		{0xEAA1, OpSknp},
		{0xEA00, OpUnknown},
		{0xFA07, OpLdVxDT},
		{0xFA0A, OpLdVxK},
		{0xFA15, OpLdDTVx},
		{0xFA18, OpLdSTVx},
		{0xFA1E, OpAddI},
		{0xFA29, OpLdF},
		{0xFA33, OpLdB},
		{0xFA55, OpLdIVx},
		{0xFA65, OpLdVxI},
		{0xFAFF, OpUnknown},
	}

	for _, tt := range tests {
		ins := Decode(tt.word)
		assert.Equal(t, tt.op, ins.Op)
		assert.Equal(t, tt.op != OpUnknown, ins.Valid())
	}
}

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0xD3A7)

	assert.Equal(t, uint16(0xD3A7), ins.Word)
	assert.Equal(t, byte(0x3), ins.X)
	assert.Equal(t, byte(0xA), ins.Y)
	assert.Equal(t, byte(0x7), ins.N)
	assert.Equal(t, byte(0xA7), ins.NN)
	assert.Equal(t, uint16(0x3A7), ins.NNN)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "cls", OpCls.String())
	assert.Equal(t, "subn", OpSubn.String())
	assert.Equal(t, "ld", OpLdVxI.String())
	assert.Equal(t, "unknown", OpUnknown.String())
	assert.Equal(t, "unknown", Op(-1).String())
	assert.Equal(t, "unknown", Op(1000).String())
}

func TestDecode_OpcodeTable(t *testing.T) {
	for _, opcodes := range chip8.Opcodes {
		for _, opcode := range opcodes {
			// 0NNN machine code calls are not supported
			if opcode.Info.Mask == 0xF000 && opcode.Info.Value == 0x0000 {
				continue
			}

			ins := Decode(opcode.Info.Value)
			assert.True(t, ins.Valid())
			assert.Equal(t, opcode.Instruction.Name, ins.Op.String())
		}
	}
}

func TestOp_Instructions(t *testing.T) {
	for op := OpCls; op <= OpLdVxI; op++ {
		assert.NotNil(t, instructions[op])
		assert.Equal(t, op, Decode(patterns[op]).Op)
	}
}
