// Package disasm implements a CHIP-8 disassembler used for execution traces
// and program listings.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/vm"
)

// Format returns the assembly text of a single instruction word.
// Words that do not decode to an instruction are rendered as data.
func Format(word uint16) string {
	ins := vm.Decode(word)
	if !ins.Valid() {
		return fmt.Sprintf(".word $%04X", word)
	}

	name := ins.Op.String()
	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// Line returns a listing line for the instruction word at the given address.
func Line(address, word uint16) string {
	return fmt.Sprintf("%04X  %04X  %s", address, word, Format(word))
}

// Listing writes a linear disassembly of a program image loaded at the
// program start address. Jump and call destinations inside the image are
// labeled.
func Listing(w io.Writer, program []byte) error {
	labels := branchDestinations(program)

	for offset := 0; offset < len(program); offset += 2 {
		address := uint16(vm.ProgramStart + offset)

		if name, ok := labels[address]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		var line string
		if offset+1 < len(program) {
			word := uint16(program[offset])<<8 | uint16(program[offset+1])
			line = Line(address, word)
		} else {
			line = fmt.Sprintf("%04X  %02X    .byte $%02X", address, program[offset], program[offset])
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
