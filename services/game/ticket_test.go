package game

import (
	"math/rand"
	"testing"

	game_constants "Quina/constants/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGridIsPermutation(t *testing.T) {
	for i := 0; i < 50; i++ {
		grid := GenerateGrid(nil)

		require.Len(t, grid, game_constants.GridSize)
		seen := make(map[int]bool)
		for _, row := range grid {
			require.Len(t, row, game_constants.GridSize)
			for _, n := range row {
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, game_constants.TotalNumbers)
				assert.False(t, seen[n], "number %d repeated", n)
				seen[n] = true
			}
		}
		assert.Len(t, seen, game_constants.TotalNumbers)
	}
}

func TestGenerateGridDeterministicWithSeed(t *testing.T) {
	a := GenerateGrid(rand.New(rand.NewSource(42)))
	b := GenerateGrid(rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	c := GenerateGrid(rand.New(rand.NewSource(43)))
	assert.NotEqual(t, a, c)
}

func TestGridValidate(t *testing.T) {
	grid := GenerateGrid(rand.New(rand.NewSource(1)))
	assert.NoError(t, grid.Validate())

	t.Run("wrong row count", func(t *testing.T) {
		assert.Error(t, Grid{{1, 2, 3, 4, 5}}.Validate())
	})

	t.Run("repeated number", func(t *testing.T) {
		bad := GenerateGrid(rand.New(rand.NewSource(1)))
		bad[0][0] = bad[4][4]
		assert.Error(t, bad.Validate())
	})

	t.Run("out of range", func(t *testing.T) {
		bad := GenerateGrid(rand.New(rand.NewSource(1)))
		bad[2][2] = 26
		assert.Error(t, bad.Validate())
	})
}

func TestTicketRoundTrip(t *testing.T) {
	grid := GenerateGrid(rand.New(rand.NewSource(7)))
	data, err := MarshalTicket(grid)
	require.NoError(t, err)

	parsed, err := UnmarshalTicket(data)
	require.NoError(t, err)
	assert.Equal(t, grid, parsed)

	_, err = UnmarshalTicket([]byte(`[[1,2],[3]]`))
	assert.Error(t, err)
}
