package vm

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// RandomSource returns a uniformly distributed random byte.
type RandomSource func() byte

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics and tracing.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRandom replaces the random source used by the rnd instruction.
func WithRandom(random RandomSource) Option {
	return func(e *Engine) {
		e.random = random
	}
}

// WithDiagnostics sets a handler that receives non-fatal execution
// conditions like unknown opcodes.
func WithDiagnostics(handler func(error)) Option {
	return func(e *Engine) {
		e.diagnostics = handler
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(e *Engine) {
		e.trace = trace
	}
}

// Engine executes instructions on a Machine. It performs no I/O and never
// blocks, pacing is entirely up to the caller of Step and TickTimers.
type Engine struct {
	m           *Machine
	logger      *log.Logger
	random      RandomSource
	diagnostics func(error)
	trace       bool

	cycles         uint64
	unknownOpcodes uint64
}

// NewEngine returns an engine operating on the given machine.
func NewEngine(m *Machine, opts ...Option) *Engine {
	e := &Engine{
		m: m,
		random: func() byte {
			return byte(rand.UintN(256))
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Machine returns the machine the engine operates on.
func (e *Engine) Machine() *Machine {
	return e.m
}

// Cycles returns the number of executed steps.
func (e *Engine) Cycles() uint64 {
	return e.cycles
}

// UnknownOpcodes returns the number of instruction words that matched no
// operation and were skipped.
func (e *Engine) UnknownOpcodes() uint64 {
	return e.unknownOpcodes
}

// Reset resets the machine and the execution counters.
func (e *Engine) Reset() {
	e.m.Reset()
	e.cycles = 0
	e.unknownOpcodes = 0
}

// Step executes a single fetch-decode-execute cycle. The program counter is
// advanced past the fetched instruction before it is executed.
// Unknown opcodes are reported as diagnostics and are not returned as error.
func (e *Engine) Step() error {
	address := e.m.pc
	word, err := e.fetch()
	if err != nil {
		return err
	}
	e.m.pc += instructionSize
	e.cycles++

	ins := Decode(word)
	if e.trace && e.logger != nil {
		e.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("word", word),
			log.Stringer("op", ins.Op))
	}

	if err := e.execute(ins); err != nil {
		var opErr *OpcodeError
		if errors.As(err, &opErr) {
			opErr.Address = address
			e.reportUnknown(opErr)
			return nil
		}
		return fmt.Errorf("executing %04X at address %04x: %w", word, address, err)
	}
	return nil
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It is expected to be called at 60 Hz independent of the instruction rate.
func (e *Engine) TickTimers() {
	if e.m.delayTimer > 0 {
		e.m.delayTimer--
	}
	if e.m.soundTimer > 0 {
		e.m.soundTimer--
	}
}

// fetch reads the instruction word at the program counter.
func (e *Engine) fetch() (uint16, error) {
	pc := e.m.pc
	if int(pc)+1 >= MemorySize {
		return 0, fmt.Errorf("fetching instruction at address %04x: %w", pc, ErrFetchOutOfBounds)
	}
	return uint16(e.m.memory[pc])<<8 | uint16(e.m.memory[pc+1]), nil
}

func (e *Engine) reportUnknown(opErr *OpcodeError) {
	e.unknownOpcodes++

	if e.logger != nil {
		e.logger.Warn("Skipping unknown opcode",
			log.Hex("address", opErr.Address),
			log.Hex("word", opErr.Word))
	}
	if e.diagnostics != nil {
		e.diagnostics(opErr)
	}
}
