// Package detector handles system detection of program files.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Check logs a warning if the file extension indicates that the file is not
// a CHIP-8 program. CHIP-8 images have no header, so the extension is the
// only available hint and loading continues regardless.
func (d *Detector) Check(filename string) {
	system, known := detectFromFile(filename)
	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))

	if known && system != arch.CHIP8System {
		d.logger.Warn("File extension indicates a program for a different system",
			log.Stringer("system", system),
			log.String("file", filename))
	}
}

// detectFromFile determines the system type based on file extension.
// Unknown extensions default to CHIP-8.
func detectFromFile(filename string) (arch.System, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System, true
	case ".nes":
		return arch.NES, true
	default:
		return arch.CHIP8System, false
	}
}
