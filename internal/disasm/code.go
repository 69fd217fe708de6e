package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// branchDestinations returns the label names of all jump and call
// destinations that are inside of the program image. Call destinations take
// precedence over jump destinations.
func branchDestinations(program []byte) map[uint16]string {
	end := vm.ProgramStart + len(program)
	calls := set.New[uint16]()
	jumps := set.New[uint16]()

	for offset := 0; offset+1 < len(program); offset += 2 {
		word := uint16(program[offset])<<8 | uint16(program[offset+1])
		ins := vm.Decode(word)

		if int(ins.NNN) < vm.ProgramStart || int(ins.NNN) >= end {
			continue
		}
		switch ins.Op {
		case vm.OpCall:
			calls.Add(ins.NNN)
		case vm.OpJp:
			jumps.Add(ins.NNN)
		}
	}

	labels := make(map[uint16]string, len(calls)+len(jumps))
	for address := range jumps {
		labels[address] = fmt.Sprintf(labelNaming, address)
	}
	for address := range calls {
		labels[address] = fmt.Sprintf(funcNaming, address)
	}
	return labels
}
