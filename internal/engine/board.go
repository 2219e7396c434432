// Package engine implements the 2048 board state-transition rules: sliding,
// merging, spawning and terminal detection. It has no UI or I/O dependencies.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the standard board side length.
const DefaultSize = 4

// Cell addresses a single board position.
type Cell struct {
	Row, Col int
}

// Board is a square grid of tile values stored row-major. 0 marks an empty
// cell. The zero Board has size 0; use NewBoard or BoardFromRows.
type Board struct {
	size  int
	cells []int
}

// NewBoard returns an empty board of the given side length.
func NewBoard(size int) Board {
	if size < 1 {
		size = DefaultSize
	}
	return Board{size: size, cells: make([]int, size*size)}
}

// BoardFromRows builds a board from a square matrix of tile values.
// The result is validated; rows that break the tile invariant are rejected.
func BoardFromRows(rows [][]int) (Board, error) {
	n := len(rows)
	if n == 0 {
		return Board{}, fmt.Errorf("engine: empty board: %w", ErrInvalidArgument)
	}
	b := NewBoard(n)
	for r, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("engine: row %d has %d cells, want %d: %w", r, len(row), n, ErrInvalidArgument)
		}
		copy(b.cells[r*n:(r+1)*n], row)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// MustBoard is BoardFromRows for fixtures; it panics on invalid input.
func MustBoard(rows [][]int) Board {
	b, err := BoardFromRows(rows)
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the side length.
func (b Board) Size() int {
	return b.size
}

// At returns the value at (row, col).
func (b Board) At(row, col int) int {
	return b.cells[row*b.size+col]
}

func (b Board) set(row, col, v int) {
	b.cells[row*b.size+col] = v
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := Board{size: b.size, cells: make([]int, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// Rows returns the board as a freshly allocated matrix.
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Equal reports whether both boards have the same size and cells.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns all empty positions in row-major order.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range b.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / b.size, Col: i % b.size})
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func (b Board) HasEmptyCell() bool {
	for _, v := range b.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasMergeablePair returns true if two horizontally or vertically adjacent
// cells hold the same non-zero value.
func (b Board) HasMergeablePair() bool {
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			v := b.At(r, c)
			if v == 0 {
				continue
			}
			if c < b.size-1 && b.At(r, c+1) == v {
				return true
			}
			if r < b.size-1 && b.At(r+1, c) == v {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns true when no empty cell and no mergeable pair remain.
func (b Board) IsTerminal() bool {
	return !b.HasEmptyCell() && !b.HasMergeablePair()
}

// MaxTile returns the highest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (b Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

// Validate checks the board shape and that every non-zero cell is 2^k, k >= 1.
func (b Board) Validate() error {
	if b.size < 1 || len(b.cells) != b.size*b.size {
		return fmt.Errorf("engine: board has %d cells for size %d: %w", len(b.cells), b.size, ErrInvariantViolation)
	}
	for i, v := range b.cells {
		if v == 0 {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("engine: cell (%d,%d) holds %d: %w", i/b.size, i%b.size, v, ErrInvariantViolation)
		}
	}
	return nil
}

// String renders the board as right-aligned rows, "." for empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.At(r, c)
			s := "."
			if v != 0 {
				s = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
	}
	return sb.String()
}
