package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideLineMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{2, 2, 4, 0},
			expected: []int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "two different pairs",
			input:    []int{2, 2, 4, 4},
			expected: []int{4, 8, 0, 0},
			score:    12,
		},
		{
			name:     "pair across gap then single",
			input:    []int{8, 0, 8, 8},
			expected: []int{16, 8, 0, 0},
			score:    16,
		},
		{
			name:     "middle pair",
			input:    []int{2, 4, 4, 2},
			expected: []int{2, 8, 2, 0},
			score:    8,
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "no merge across a different value",
			input:    []int{2, 4, 0, 2},
			expected: []int{2, 4, 2, 0},
			score:    0,
		},
		{
			name:     "no change needed",
			input:    []int{4, 2, 0, 0},
			expected: []int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
			score:    0,
		},
		{
			name:     "longer line",
			input:    []int{2, 2, 2, 2, 2, 0},
			expected: []int{4, 4, 2, 0, 0, 0},
			score:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := slideLine(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestSlideLineDoesNotModifyInput(t *testing.T) {
	in := []int{2, 2, 0, 4}
	slideLine(in)
	assert.Equal(t, []int{2, 2, 0, 4}, in)
}

func TestLineIndex(t *testing.T) {
	tests := []struct {
		dir          Direction
		line, pos    int
		wantR, wantC int
	}{
		{DirLeft, 1, 0, 1, 0},
		{DirLeft, 1, 3, 1, 3},
		{DirRight, 1, 0, 1, 3},
		{DirRight, 1, 3, 1, 0},
		{DirUp, 2, 0, 0, 2},
		{DirUp, 2, 3, 3, 2},
		{DirDown, 2, 0, 3, 2},
		{DirDown, 2, 3, 0, 2},
	}

	for _, tt := range tests {
		r, c := lineIndex(tt.dir, 4, tt.line, tt.pos)
		assert.Equal(t, [2]int{tt.wantR, tt.wantC}, [2]int{r, c}, "lineIndex(%s, 4, %d, %d)", tt.dir, tt.line, tt.pos)
	}
}

func TestLineIndexCoversBoard(t *testing.T) {
	const n = 5
	for _, dir := range Directions {
		seen := make(map[Cell]bool)
		for l := 0; l < n; l++ {
			for p := 0; p < n; p++ {
				r, c := lineIndex(dir, n, l, p)
				seen[Cell{Row: r, Col: c}] = true
			}
		}
		assert.Len(t, seen, n*n, "lineIndex(%s)", dir)
	}
}

func TestSlideLeft(t *testing.T) {
	board := MustBoard([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := MustBoard([][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	})

	result, score, changed, err := Slide(board, DirLeft)
	require.NoError(t, err)

	assert.True(t, result.Equal(expected), "got\n%v\nwant\n%v", result, expected)
	assert.True(t, changed)
	assert.Equal(t, 4+8+8, score)
}

func TestSlideRight(t *testing.T) {
	board := MustBoard([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	})

	expected := MustBoard([][]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	})

	result, _, changed, err := Slide(board, DirRight)
	require.NoError(t, err)

	assert.True(t, result.Equal(expected), "got\n%v\nwant\n%v", result, expected)
	assert.True(t, changed)
}

func TestSlideUp(t *testing.T) {
	board := MustBoard([][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	})

	expected := MustBoard([][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	result, _, changed, err := Slide(board, DirUp)
	require.NoError(t, err)

	assert.True(t, result.Equal(expected), "got\n%v\nwant\n%v", result, expected)
	assert.True(t, changed)
}

func TestSlideDown(t *testing.T) {
	board := MustBoard([][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	})

	expected := MustBoard([][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	})

	result, _, changed, err := Slide(board, DirDown)
	require.NoError(t, err)

	assert.True(t, result.Equal(expected), "got\n%v\nwant\n%v", result, expected)
	assert.True(t, changed)
}

func TestSlideNoChange(t *testing.T) {
	board := MustBoard([][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// Tiles are already left-aligned
	_, score, changed, err := Slide(board, DirLeft)
	require.NoError(t, err)

	assert.False(t, changed)
	assert.Zero(t, score)
}

func TestSlideDoesNotModifyInput(t *testing.T) {
	board := MustBoard([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := board.Clone()

	_, _, _, err := Slide(board, DirLeft)
	require.NoError(t, err)

	assert.True(t, board.Equal(before), "input modified:\n%v", board)
}

func TestSlideInvalidDirection(t *testing.T) {
	board := NewBoard(4)

	for _, dir := range []Direction{Direction(-1), Direction(4), Direction(99)} {
		_, _, changed, err := Slide(board, dir)
		assert.ErrorIs(t, err, ErrInvalidArgument, "Slide(%d)", int(dir))
		assert.False(t, changed, "Slide(%d)", int(dir))
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"up", DirUp},
		{"DOWN", DirDown},
		{" left ", DirLeft},
		{"r", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		require.NoError(t, err, "ParseDirection(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseDirection(%q)", tt.input)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirLeft.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestSlideKeepsBoardTotal(t *testing.T) {
	board := MustBoard([][]int{
		{8, 8, 8, 0},
		{16, 0, 2, 2},
		{4, 8, 8, 8},
		{4, 4, 0, 0},
	})

	expected := MustBoard([][]int{
		{0, 0, 8, 16},
		{0, 0, 16, 4},
		{0, 4, 8, 16},
		{0, 0, 0, 8},
	})

	result, score, changed, err := Slide(board, DirRight)
	require.NoError(t, err)

	assert.True(t, changed)
	assert.True(t, result.Equal(expected), "got\n%v\nwant\n%v", result, expected)
	assert.Equal(t, 16+4+16+8, score)
	assert.Equal(t, 80, board.Sum())
	assert.Equal(t, board.Sum(), result.Sum())
}
