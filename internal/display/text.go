package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/vm"
)

// WriteText writes the framebuffer as text, one line per pixel row.
func WriteText(w io.Writer, fb vm.Framebuffer) error {
	buf := bufio.NewWriter(w)
	line := make([]byte, vm.ScreenWidth+1)
	line[vm.ScreenWidth] = '\n'

	for _, row := range fb {
		for x, on := range row {
			if on {
				line[x] = '#'
			} else {
				line[x] = '.'
			}
		}
		if _, err := buf.Write(line); err != nil {
			return fmt.Errorf("writing screen: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}
