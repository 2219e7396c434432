package engine

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "up" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q: %w", s, ErrInvalidArgument)
}

// lineIndex maps position pos of line number line to board coordinates for
// a board of side n. Position 0 is the edge tiles slide toward.
func lineIndex(dir Direction, n, line, pos int) (row, col int) {
	switch dir {
	case DirLeft:
		return line, pos
	case DirRight:
		return line, n - 1 - pos
	case DirUp:
		return pos, line
	default: // DirDown
		return n - 1 - pos, line
	}
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge does not merge again in the same pass.
// Returns the new line and the sum of merge outputs.
func slideLine(line []int) (result []int, score int) {
	result = make([]int, len(line))
	writePos := 0
	lastMerged := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			lastMerged = true
			continue
		}

		result[writePos] = v
		writePos++
		lastMerged = false
	}

	return result, score
}

// Slide applies a move to a copy of board and returns the new board, the
// score gained and whether any cell changed. board is not modified.
func Slide(board Board, dir Direction) (Board, int, bool, error) {
	if !dir.Valid() {
		return board, 0, false, fmt.Errorf("engine: invalid direction %d: %w", int(dir), ErrInvalidArgument)
	}

	n := board.Size()
	out := NewBoard(n)
	line := make([]int, n)
	total := 0

	for l := 0; l < n; l++ {
		for p := 0; p < n; p++ {
			line[p] = board.At(lineIndex(dir, n, l, p))
		}
		slid, score := slideLine(line)
		total += score
		for p, v := range slid {
			r, c := lineIndex(dir, n, l, p)
			out.set(r, c, v)
		}
	}

	return out, total, !out.Equal(board), nil
}
