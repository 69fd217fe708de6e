// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// ErrEmptyProgram is returned for program files without any content.
var ErrEmptyProgram = errors.New("program is empty")

// Load reads a raw CHIP-8 program image from disk. CHIP-8 images have no
// header, the file content is placed at the program start address as is.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("loading %s: %w", path, ErrEmptyProgram)
	case len(data) > vm.MaxProgramSize:
		return nil, fmt.Errorf("loading %s with size %d, maximum is %d: %w",
			path, len(data), vm.MaxProgramSize, vm.ErrOutOfMemory)
	}
	return data, nil
}

// Checksum returns the CRC32 checksum of a program image.
func Checksum(program []byte) uint32 {
	crc32q := crc32.MakeTable(crc32.IEEE)
	return crc32.Checksum(program, crc32q)
}
