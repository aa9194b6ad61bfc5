package life

import "math/rand"

// demoRows is the built-in starter board, drawn with '#' for live cells.
var demoRows = []string{
	"...................",
	"..#................",
	"..#....##..........",
	"..#.....#..........",
	".......#...........",
	".......##......##..",
	".......#.......##..",
	".....#.#.....#..#..",
	".....###......##...",
	".............#.#...",
	"...........#.##....",
	"...........####....",
	"..............#....",
	"...........#..#....",
	"...........####....",
	"...................",
	"...................",
	"...................",
	"...................",
}

// NewCells allocates a rows x cols cell matrix with every cell dead.
func NewCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return cells
}

// DemoSeed returns the built-in 19x19 starter board.
func DemoSeed() [][]bool {
	cells := make([][]bool, len(demoRows))
	for r, row := range demoRows {
		cells[r] = make([]bool, len(row))
		for c, ch := range row {
			cells[r][c] = ch == '#'
		}
	}
	return cells
}

// RandomSeed returns a rows x cols matrix where each cell is independently
// alive with probability density.
func RandomSeed(rows, cols int, density float64) [][]bool {
	cells := NewCells(rows, cols)
	for r := range cells {
		for c := range cells[r] {
			cells[r][c] = rand.Float64() < density
		}
	}
	return cells
}

// ShowcaseSeed returns a rows x cols matrix stamped with gliders and blinkers
// on boards large enough to hold them, plus random life scattered at the given
// density. The scatter only adds cells, so the stamped patterns stay intact.
func ShowcaseSeed(rows, cols int, density float64) [][]bool {
	cells := NewCells(rows, cols)

	if rows >= 10 && cols >= 10 {
		Glider(cells, 5, 5)
		if rows >= 15 && cols >= 20 {
			Glider(cells, 5, cols-8)
		}

		Blinker(cells, rows/4, cols/4)
		if cols >= 30 {
			Blinker(cells, 3*rows/4, 3*cols/4)
		}
	}

	Scatter(cells, density)
	return cells
}

// Glider stamps a glider with its top-left corner at (row, col). Cells falling
// outside the matrix are dropped.
func Glider(cells [][]bool, row, col int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for r, patternRow := range pattern {
		for c, alive := range patternRow {
			if alive {
				setCell(cells, row+r, col+c)
			}
		}
	}
}

// Blinker stamps a horizontal blinker starting at (row, col). Cells falling
// outside the matrix are dropped.
func Blinker(cells [][]bool, row, col int) {
	setCell(cells, row, col)
	setCell(cells, row, col+1)
	setCell(cells, row, col+2)
}

// Block stamps a 2x2 block with its top-left corner at (row, col). Cells
// falling outside the matrix are dropped.
func Block(cells [][]bool, row, col int) {
	setCell(cells, row, col)
	setCell(cells, row, col+1)
	setCell(cells, row+1, col)
	setCell(cells, row+1, col+1)
}

// Scatter sets each dead cell alive with probability density, leaving cells
// that are already alive untouched.
func Scatter(cells [][]bool, density float64) {
	for r := range cells {
		for c := range cells[r] {
			if rand.Float64() < density {
				cells[r][c] = true
			}
		}
	}
}

func setCell(cells [][]bool, row, col int) {
	if row >= 0 && row < len(cells) && col >= 0 && col < len(cells[row]) {
		cells[row][col] = true
	}
}
