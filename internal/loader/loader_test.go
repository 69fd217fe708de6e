package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		path := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})

		program, err := Load(path)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xE0, 0x12, 0x00}, program)
	})

	t.Run("load largest program", func(t *testing.T) {
		path := createTempFile(t, make([]byte, vm.MaxProgramSize))

		program, err := Load(path)
		assert.NoError(t, err)
		assert.Len(t, program, vm.MaxProgramSize)
	})

	t.Run("error on oversized program", func(t *testing.T) {
		path := createTempFile(t, make([]byte, vm.MaxProgramSize+1))

		_, err := Load(path)
		assert.True(t, errors.Is(err, vm.ErrOutOfMemory))
	})

	t.Run("error on empty file", func(t *testing.T) {
		path := createTempFile(t, nil)

		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := Load("/nonexistent/file.ch8")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestChecksum(t *testing.T) {
	assert.Equal(t, uint32(0), Checksum(nil))
	// CRC32 IEEE check value
	assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
