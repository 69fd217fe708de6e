// Package vm implements the CHIP-8 virtual machine core.
//
// # Machine State
//
// A Machine holds the complete observable state of the system:
//   - 4KB of memory (0x000-0xFFF), the hex glyphs are stored at 0x000-0x04F
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as flag register
//   - the 16-bit index register I and the program counter
//   - a 16 level call stack with stack pointer
//   - delay and sound timers
//   - a 64x32 monochrome framebuffer and a redraw flag
//   - the state of the 16 keys of the hex keypad
//
// # Execution
//
// An Engine executes instructions on a Machine. Every call to Step fetches
// the big-endian instruction word at the program counter, advances the
// program counter by 2 and executes the decoded instruction. Timers are
// not decremented by Step, TickTimers has to be called at 60 Hz by the host.
//
// Unknown instruction words are skipped. They are logged, passed to the
// diagnostics handler and counted, but do not stop execution.
//
// # Usage Example
//
//	m := vm.NewMachine()
//	if err := m.LoadProgram(program); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//
//	engine := vm.NewEngine(m, vm.WithLogger(logger))
//	for range speed {
//		if err := engine.Step(); err != nil {
//			return fmt.Errorf("executing program: %w", err)
//		}
//	}
//	engine.TickTimers()
package vm
