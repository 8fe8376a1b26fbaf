package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rows are 1-5, 6-10, ... so columns are {1,6,11,16,21}, {2,7,12,17,22}, ...
func sequentialGrid() Grid {
	g := make(Grid, 5)
	for r := 0; r < 5; r++ {
		g[r] = make([]int, 5)
		for c := 0; c < 5; c++ {
			g[r][c] = r*5 + c + 1
		}
	}
	return g
}

func drawnOf(numbers ...int) map[int]bool {
	set := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		set[n] = true
	}
	return set
}

func TestCountCompletedLines(t *testing.T) {
	g := sequentialGrid()

	assert.Equal(t, 0, CountCompletedLines(g, drawnOf()))
	assert.Equal(t, 0, CountCompletedLines(g, drawnOf(1, 2, 3, 4)))

	t.Run("one row", func(t *testing.T) {
		assert.Equal(t, 1, CountCompletedLines(g, drawnOf(1, 2, 3, 4, 5)))
	})

	t.Run("one column", func(t *testing.T) {
		assert.Equal(t, 1, CountCompletedLines(g, drawnOf(1, 6, 11, 16, 21)))
	})

	t.Run("row and column sharing a cell", func(t *testing.T) {
		assert.Equal(t, 2, CountCompletedLines(g, drawnOf(1, 2, 3, 4, 5, 6, 11, 16, 21)))
	})

	t.Run("everything drawn", func(t *testing.T) {
		all := make(map[int]bool)
		for n := 1; n <= 25; n++ {
			all[n] = true
		}
		assert.Equal(t, 10, CountCompletedLines(g, all))
	})
}

func TestCountCompletedLinesMonotonic(t *testing.T) {
	g := GenerateGrid(rand.New(rand.NewSource(99)))

	order := rand.New(rand.NewSource(100)).Perm(25)
	drawn := make(map[int]bool)
	prev := 0
	for _, i := range order {
		drawn[i+1] = true
		lines := CountCompletedLines(g, drawn)
		assert.GreaterOrEqual(t, lines, prev, "adding a number un-completed a line")
		prev = lines
	}
	assert.Equal(t, 10, prev)
}

func TestHasWon(t *testing.T) {
	g := sequentialGrid()

	// rows 1-4 complete plus column 1: five lines
	drawn := drawnOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21)
	assert.True(t, HasWon(g, drawn))

	// four complete rows only
	fourRows := drawnOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)
	assert.False(t, HasWon(g, fourRows))
}
