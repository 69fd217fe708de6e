package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchOutOfBounds is returned when the program counter points outside of memory.
	ErrFetchOutOfBounds = errors.New("fetch out of bounds")
	// ErrStackOverflow is returned when a call exceeds the stack capacity.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnknownOpcode is reported for instruction words that match no opcode.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrInvalidKeyIndex is returned when a key outside of 0x0-0xF is set.
	ErrInvalidKeyIndex = errors.New("invalid key index")
	// ErrKeyIndexOutOfRange is returned when a key instruction reads a register value above 0xF.
	ErrKeyIndexOutOfRange = errors.New("key index out of range")
	// ErrOutOfMemory is returned when a program image does not fit into memory.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrMemoryOutOfBounds is returned when an instruction accesses memory outside of the address space.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
)

// OpcodeError describes an instruction word that could not be decoded.
type OpcodeError struct {
	Address uint16 // address the word was fetched from
	Word    uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s %04X at address %04X", ErrUnknownOpcode, e.Word, e.Address)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}
