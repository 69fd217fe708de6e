// Package display presents the virtual machine in a window, feeds keyboard
// input to the keypad and plays the sound timer tone.
package display

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// DefaultScale is the default window size of a single pixel.
const DefaultScale = 20

var (
	colorOn  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	colorOff = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

// Options controls the window.
type Options struct {
	Title string
	Scale int
	Mute  bool
}

// Game implements the ebiten.Game interface for the virtual machine.
type Game struct {
	logger  *log.Logger
	runner  *runner.Runner
	machine *vm.Machine
	program []byte
	opts    Options

	screen *ebiten.Image
	pixels []byte
	beeper *beeper
}

// New returns a new game that drives the given runner. The program is used
// to reload the machine on reset.
func New(logger *log.Logger, r *runner.Runner, machine *vm.Machine, program []byte, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	return &Game{
		logger:  logger,
		runner:  r,
		machine: machine,
		program: program,
		opts:    opts,
		pixels:  make([]byte, vm.ScreenWidth*vm.ScreenHeight*4),
	}
}

// Run opens the window and runs the game loop until the window is closed
// or the program stops with an error.
func (g *Game) Run() error {
	if !g.opts.Mute {
		b, err := newBeeper()
		if err != nil {
			return err
		}
		g.beeper = b
		defer func() {
			if err := b.close(); err != nil {
				g.logger.Error("Closing beeper failed", log.Err(err))
			}
		}()
	}

	ebiten.SetWindowSize(vm.ScreenWidth*g.opts.Scale, vm.ScreenHeight*g.opts.Scale)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(runner.FrameRate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// Update handles input and executes one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(keyQuit) {
		return ebiten.Termination
	}
	if err := g.handleControlKeys(); err != nil {
		return err
	}

	for _, k := range keypad {
		if err := g.machine.SetKey(k.index, ebiten.IsKeyPressed(k.key)); err != nil {
			return fmt.Errorf("setting key state: %w", err)
		}
	}

	err := g.runner.Frame()
	if g.beeper != nil {
		g.beeper.update(g.machine.SoundTimer() > 0 && !g.runner.Paused())
	}
	if errors.Is(err, runner.ErrBreakpoint) {
		return nil
	}
	return err
}

// Draw renders the framebuffer. The cached screen image is only updated
// when the machine reports a change.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(vm.ScreenWidth, vm.ScreenHeight)
		g.machine.Redraw()
		g.updateScreen()
	} else if g.machine.Redraw() {
		g.updateScreen()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.screen, op)

	if g.runner.Paused() {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("PAUSED %04X", g.machine.PC()))
	}
}

// Layout returns the scaled screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return vm.ScreenWidth * g.opts.Scale, vm.ScreenHeight * g.opts.Scale
}

func (g *Game) handleControlKeys() error {
	switch {
	case inpututil.IsKeyJustPressed(keyPause):
		if g.runner.Paused() {
			g.runner.Resume()
		} else {
			g.runner.Pause()
		}

	case inpututil.IsKeyJustPressed(keyStep) && g.runner.Paused():
		if err := g.runner.StepInstruction(); err != nil {
			return fmt.Errorf("stepping instruction: %w", err)
		}

	case inpututil.IsKeyJustPressed(keyReset):
		if err := g.runner.Reload(g.program); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) updateScreen() {
	fillPixels(g.pixels, g.machine.Framebuffer())
	g.screen.WritePixels(g.pixels)
}

// fillPixels converts the framebuffer to RGBA pixels.
func fillPixels(pixels []byte, fb vm.Framebuffer) {
	for y, row := range fb {
		for x, on := range row {
			c := colorOff
			if on {
				c = colorOn
			}
			i := (y*vm.ScreenWidth + x) * 4
			pixels[i] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
		}
	}
}
