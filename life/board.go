// Package life holds the simulation core: the board state model, the
// generation step, and the renderers that project board state onto a pixel
// frame or a terminal.
package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Board is a rectangular Game of Life board with fixed dimensions. Cell state
// is stored row-major; a second buffer of the same shape backs the generation
// swap so a step never observes its own partial results.
//
// A Board is not safe for concurrent use: callers serialize Advance and the
// renderer reads, one completing fully before the next begins.
type Board struct {
	rows    int
	cols    int
	cells   [][]bool
	scratch [][]bool
	policy  rules.Policy
}

// NewBoard creates a board from a seed matrix under the standard survival
// rule. The seed must be rectangular with at least one row and one column;
// anything else is a construction error. The seed is copied, so the caller
// may reuse or mutate it afterwards.
func NewBoard(seed [][]bool) (*Board, error) {
	return NewBoardWithPolicy(seed, rules.Standard)
}

// NewBoardWithPolicy is NewBoard with a caller-supplied survival policy. The
// policy governs live cells only; dead-cell birth stays the fixed
// three-neighbor rule regardless of policy.
func NewBoardWithPolicy(seed [][]bool, policy rules.Policy) (*Board, error) {
	if len(seed) == 0 {
		return nil, errors.New("[NewBoardWithPolicy] seed has no rows")
	}
	cols := len(seed[0])
	if cols == 0 {
		return nil, errors.New("[NewBoardWithPolicy] seed has no columns")
	}
	if policy == nil {
		return nil, errors.New("[NewBoardWithPolicy] nil policy")
	}

	b := &Board{
		rows:    len(seed),
		cols:    cols,
		cells:   NewCells(len(seed), cols),
		scratch: NewCells(len(seed), cols),
		policy:  policy,
	}
	for r, row := range seed {
		if len(row) != cols {
			return nil, errors.Errorf("[NewBoardWithPolicy] seed is not rectangular: row %d has %d columns, want %d", r, len(row), cols)
		}
		copy(b.cells[r], row)
	}
	return b, nil
}

// Rows returns the number of rows on the board.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns on the board.
func (b *Board) Cols() int {
	return b.cols
}

// Get returns the liveness of the cell at (row, col). Positions outside the
// board read as dead.
func (b *Board) Get(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return false
	}
	return b.cells[row][col]
}

// Set sets the liveness of the cell at (row, col). Positions outside the
// board are ignored.
func (b *Board) Set(row, col int, alive bool) {
	if row >= 0 && row < b.rows && col >= 0 && col < b.cols {
		b.cells[row][col] = alive
	}
}

// CountLiveNeighbors returns the number of live cells among the 8 Moore
// neighbors of (row, col). Positions off the board count as dead; there is no
// wraparound.
func (b *Board) CountLiveNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(b.rows-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(b.cols-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if b.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// advanceRows writes the next generation of rows [startRow, endRow) into the
// scratch buffer, reading only the current generation.
func (b *Board) advanceRows(startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := 0; c < b.cols; c++ {
			n := b.CountLiveNeighbors(r, c)
			if b.cells[r][c] {
				b.scratch[r][c] = b.policy.NextState(n)
			} else {
				b.scratch[r][c] = n == 3
			}
		}
	}
}

// Advance steps the board one generation. Every cell's next state is computed
// from the current generation into the spare buffer, then the buffers swap,
// so the replacement is atomic from the caller's point of view.
func (b *Board) Advance() {
	b.advanceRows(0, b.rows)
	b.cells, b.scratch = b.scratch, b.cells
}

// AdvanceParallel is Advance with the row sweep split into bands processed by
// an errgroup, one goroutine per band. workers <= 0 means one per CPU. The
// result is identical to Advance: the bands write disjoint scratch rows and
// join before the buffer swap.
func (b *Board) AdvanceParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (b.rows + workers - 1) / workers // Ceiling division
	)
	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.rows)
		)
		if startRow >= b.rows {
			break
		}

		eg.Go(func() error {
			b.advanceRows(startRow, endRow)
			return nil
		})
	}
	// Band workers never fail; Wait only joins them.
	_ = eg.Wait()

	b.cells, b.scratch = b.scratch, b.cells
}

// Population returns the number of live cells on the board.
func (b *Board) Population() (count int) {
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] {
				count++
			}
		}
	}
	return
}
