package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/vm"
)

// formatParams formats the parameters of a decoded instruction.
//
//nolint:cyclop // one case per operand layout
func formatParams(ins vm.Instruction) string {
	switch ins.Op {
	case vm.OpJp, vm.OpCall:
		return fmt.Sprintf("$%03X", ins.NNN)
	case vm.OpJpV0:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case vm.OpLdI:
		return fmt.Sprintf("I, $%03X", ins.NNN)

	case vm.OpSeImm, vm.OpSneImm, vm.OpLdImm, vm.OpAddImm, vm.OpRnd:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)

	case vm.OpSeReg, vm.OpSneReg, vm.OpLdReg, vm.OpOr, vm.OpAnd, vm.OpXor,
		vm.OpAddReg, vm.OpSub, vm.OpSubn:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)

	case vm.OpShr, vm.OpShl:
		// the shifted value is read from VY
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)

	case vm.OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)

	case vm.OpSkp, vm.OpSknp:
		return fmt.Sprintf("V%X", ins.X)

	case vm.OpLdVxDT:
		return fmt.Sprintf("V%X, DT", ins.X)
	case vm.OpLdVxK:
		return fmt.Sprintf("V%X, K", ins.X)
	case vm.OpLdDTVx:
		return fmt.Sprintf("DT, V%X", ins.X)
	case vm.OpLdSTVx:
		return fmt.Sprintf("ST, V%X", ins.X)
	case vm.OpAddI:
		return fmt.Sprintf("I, V%X", ins.X)
	case vm.OpLdF:
		return fmt.Sprintf("F, V%X", ins.X)
	case vm.OpLdB:
		return fmt.Sprintf("B, V%X", ins.X)
	case vm.OpLdIVx:
		return fmt.Sprintf("[I], V%X", ins.X)
	case vm.OpLdVxI:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}
