package main

import (
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/life"
	"github.com/sheikhrachel/go-life/utils"
)

// statusColor is the HUD text color, readable over both live and dead cells.
var statusColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Game drives the simulation: generation steps run on the configured
// interval, decoupled from the render rate, with each step drawn from a fresh
// pixel frame.
type Game struct {
	board    *life.Board
	renderer *life.FrameRenderer
	stats    *utils.Stats
	config   utils.Config

	frame  []byte
	width  int
	height int

	generation int
	lastStep   time.Time
}

// newGame builds the board for the configured pattern and sizes the pixel
// frame to match. The frame dimensions come from the board, not the config,
// since the built-in demo board has fixed dimensions.
func newGame(config utils.Config) (*Game, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	seed, err := seedFromConfig(config)
	if err != nil {
		return nil, err
	}
	board, err := life.NewBoard(seed)
	if err != nil {
		return nil, err
	}

	var (
		width  = board.Cols() * config.CellSize
		height = board.Rows() * config.CellSize
	)
	return &Game{
		board:    board,
		renderer: life.NewFrameRenderer(),
		stats:    utils.NewStats(),
		config:   config,
		frame:    make([]byte, width*height*4),
		width:    width,
		height:   height,
		lastStep: time.Now(),
	}, nil
}

// Update steps the simulation once the configured interval has elapsed.
// Escape or the generation limit ends the run.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if time.Since(g.lastStep) < g.config.StepInterval {
		return nil
	}
	g.step()

	if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current generation and the status line over it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.board, g.frame, g.config.CellSize)
	screen.WritePixels(g.frame)
	text.Draw(screen, g.statusLine(), basicfont.Face7x13, 4, 12, statusColor)
}

// Layout returns the fixed logical canvas size, one texel per frame pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// step advances one generation and refreshes the stats. The rate sample is
// the time between step completions.
func (g *Game) step() {
	now := time.Now()
	g.advance()
	g.generation++
	g.stats.Update(g.generation, g.board.Population(), now.Sub(g.lastStep))
	g.lastStep = now
}

func (g *Game) advance() {
	if g.config.Parallel {
		g.board.AdvanceParallel(0)
		return
	}
	g.board.Advance()
}

func (g *Game) statusLine() string {
	return fmt.Sprintf("Gen: %d | Living: %d | %.1f gen/sec",
		g.generation, g.board.Population(), g.stats.GenerationsPerSecond)
}

// runHeadless drives the simulation in the terminal at the configured step
// interval until a signal arrives or the generation limit is reached.
func (g *Game) runHeadless() {
	renderer := life.NewTerminalRenderer()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			g.printFinalStats()
			return
		default:
			// Continue with game loop
		}

		renderer.Clear()
		renderer.Display(g.board)
		fmt.Println(g.statusLine())

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			g.printFinalStats()
			return
		}

		g.step()
		time.Sleep(g.config.StepInterval)
	}
}

func (g *Game) printFinalStats() {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

// seedFromConfig builds the starting cells for the configured pattern.
func seedFromConfig(config utils.Config) ([][]bool, error) {
	switch config.Pattern {
	case utils.PatternDemo:
		return life.DemoSeed(), nil
	case utils.PatternRandom:
		return life.RandomSeed(config.Rows, config.Cols, config.RandomDensity), nil
	case utils.PatternShowcase:
		return life.ShowcaseSeed(config.Rows, config.Cols, config.RandomDensity), nil
	default:
		return nil, errors.Errorf("[seedFromConfig] unknown pattern: %+v", config.Pattern)
	}
}

// validateConfig rejects settings the board and renderer cannot host.
func validateConfig(config utils.Config) error {
	if config.Rows < 1 || config.Cols < 1 {
		return errors.Errorf("[validateConfig] board is %dx%d, want at least 1x1", config.Rows, config.Cols)
	}
	if config.CellSize < 1 {
		return errors.Errorf("[validateConfig] cell size %d, want at least 1", config.CellSize)
	}
	if config.RandomDensity < 0 || config.RandomDensity > 1 {
		return errors.Errorf("[validateConfig] random density %v, want within [0, 1]", config.RandomDensity)
	}
	if config.StepInterval < 0 {
		return errors.Errorf("[validateConfig] step interval %v, want non-negative", config.StepInterval)
	}
	return nil
}
