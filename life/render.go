package life

import (
	"fmt"
	"io"
	"os"
)

const (
	boardPosBlock = "██"
	boardPosEmpty = "  "

	ansiClearScreen = "\033[H\033[2J"
)

// FrameRenderer draws a board into a linear RGBA pixel buffer, scaling each
// cell to a cellSize x cellSize square of solid color. The buffer layout is
// 4 bytes per pixel, rows top to bottom, the format ebiten's WritePixels
// consumes directly.
type FrameRenderer struct {
	Live [4]byte
	Dead [4]byte
}

// NewFrameRenderer returns a renderer drawing live cells black on a white
// background.
func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{
		Live: [4]byte{0, 0, 0, 255},
		Dead: [4]byte{255, 255, 255, 255},
	}
}

// Draw writes the board into frame. Every pixel is overwritten, so the frame
// needs no clearing between generations. The frame must hold exactly
// rows*cellSize * cols*cellSize pixels at 4 bytes each and cellSize must be
// at least 1; anything else is a caller bug and panics.
func (r *FrameRenderer) Draw(b *Board, frame []byte, cellSize int) {
	if cellSize < 1 {
		panic(fmt.Sprintf("life: cell size %d, want at least 1", cellSize))
	}

	var (
		width  = b.Cols() * cellSize
		height = b.Rows() * cellSize
	)
	if len(frame) != width*height*4 {
		panic(fmt.Sprintf("life: frame holds %d bytes, want %d for a %dx%d board at cell size %d",
			len(frame), width*height*4, b.Rows(), b.Cols(), cellSize))
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := r.Dead
			if b.Get(y/cellSize, x/cellSize) {
				color = r.Live
			}
			idx := (y*width + x) * 4
			copy(frame[idx:idx+4], color[:])
		}
	}
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board to the terminal, two characters per cell.
func (r *TerminalRenderer) Display(b *Board) {
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.Get(row, col) {
				fmt.Fprint(r.Out, boardPosBlock)
			} else {
				fmt.Fprint(r.Out, boardPosEmpty)
			}
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen and homes the cursor.
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.Out, ansiClearScreen)
}
