// Package runner drives the virtual machine in frames of a fixed number of
// instructions followed by one timer tick.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const (
	// DefaultSpeed is the default number of instructions executed per frame.
	DefaultSpeed = 27

	// FrameRate is the number of frames per second, matching the timer rate.
	FrameRate = 60
)

// ErrBreakpoint is returned when execution reached a breakpoint address.
var ErrBreakpoint = errors.New("breakpoint reached")

// Options controls the execution of frames.
type Options struct {
	Speed       int             // instructions per frame
	Breakpoints set.Set[uint16] // addresses to pause execution at
}

// Runner executes frames on an engine.
type Runner struct {
	logger  *log.Logger
	engine  *vm.Engine
	machine *vm.Machine
	opts    Options

	frames         uint64
	paused         bool
	skipBreakpoint bool
}

// New returns a new runner for the given engine.
func New(logger *log.Logger, engine *vm.Engine, opts Options) *Runner {
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.Breakpoints == nil {
		opts.Breakpoints = set.New[uint16]()
	}

	return &Runner{
		logger:  logger,
		engine:  engine,
		machine: engine.Machine(),
		opts:    opts,
	}
}

// Frame executes the configured number of instructions and ticks the timers
// once. A paused runner does not execute anything. When a breakpoint is
// reached the runner pauses before executing the instruction at the
// breakpoint address and the timers are not ticked.
func (r *Runner) Frame() error {
	if r.paused {
		return nil
	}

	for range r.opts.Speed {
		if err := r.step(); err != nil {
			return err
		}
	}

	r.engine.TickTimers()
	r.frames++
	return nil
}

// Run executes frames at the frame rate until the context is cancelled,
// the given number of frames was executed or an error occurred.
// A frame count of 0 runs without limit.
func (r *Runner) Run(ctx context.Context, frames int) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for frame := 0; frames == 0 || frame < frames; frame++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := r.Frame(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}

// StepInstruction executes a single instruction, ignoring a breakpoint at
// the current address. It is used for single stepping a paused runner.
func (r *Runner) StepInstruction() error {
	r.skipBreakpoint = true
	return r.step()
}

// Reload resets the engine, loads the program and resumes execution.
func (r *Runner) Reload(program []byte) error {
	r.engine.Reset()
	if err := r.machine.LoadProgram(program); err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	r.paused = false
	r.skipBreakpoint = false
	r.logger.Info("Machine reset")
	return nil
}

// Pause stops the execution of frames.
func (r *Runner) Pause() {
	if !r.paused {
		r.paused = true
		r.logger.Info("Execution paused", log.Hex("address", r.machine.PC()))
	}
}

// Resume continues the execution of frames. A breakpoint at the current
// address is ignored until the program counter leaves it, so a key wait at
// a breakpoint keeps waiting instead of pausing again.
func (r *Runner) Resume() {
	if r.paused {
		r.paused = false
		r.skipBreakpoint = true
		r.logger.Info("Execution resumed", log.Hex("address", r.machine.PC()))
	}
}

// Paused returns whether the runner is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() uint64 {
	return r.frames
}

func (r *Runner) step() error {
	pc := r.machine.PC()
	if !r.skipBreakpoint && r.opts.Breakpoints.Contains(pc) {
		r.paused = true
		r.logBreakpoint(pc)
		return fmt.Errorf("address %04x: %w", pc, ErrBreakpoint)
	}

	if err := r.engine.Step(); err != nil {
		r.skipBreakpoint = false
		return fmt.Errorf("frame %d: %w", r.frames, err)
	}
	// a key wait rewinds the program counter to the breakpoint
	r.skipBreakpoint = r.skipBreakpoint && r.machine.PC() == pc
	return nil
}

func (r *Runner) logBreakpoint(pc uint16) {
	word, err := r.machine.ReadWord(pc)
	if err != nil {
		r.logger.Info("Breakpoint reached", log.Hex("address", pc))
		return
	}
	r.logger.Info("Breakpoint reached",
		log.Hex("address", pc),
		log.String("instruction", disasm.Format(word)))
}
