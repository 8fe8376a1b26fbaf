package game

import (
	"encoding/json"
	"fmt"
	"math/rand"

	game_constants "Quina/constants/game"
)

// Grid is a 5x5 bingo ticket: the numbers 1..25, each exactly once, in five
// rows of five. Columns are read down the grid at a fixed index.
type Grid [][]int

// GenerateGrid shuffles 1..25 (Fisher-Yates) and slices the permutation into
// five consecutive rows. Pass a seeded *rand.Rand for deterministic output;
// nil uses the shared source.
func GenerateGrid(rng *rand.Rand) Grid {
	numbers := make([]int, game_constants.TotalNumbers)
	for i := range numbers {
		numbers[i] = i + 1
	}

	swap := func(i, j int) { numbers[i], numbers[j] = numbers[j], numbers[i] }
	if rng != nil {
		rng.Shuffle(len(numbers), swap)
	} else {
		rand.Shuffle(len(numbers), swap)
	}

	grid := make(Grid, game_constants.GridSize)
	for r := 0; r < game_constants.GridSize; r++ {
		grid[r] = numbers[r*game_constants.GridSize : (r+1)*game_constants.GridSize]
	}
	return grid
}

// Validate checks the grid shape and that its entries are a permutation of
// 1..25. Used when unmarshaling tickets coming back from storage.
func (g Grid) Validate() error {
	if len(g) != game_constants.GridSize {
		return fmt.Errorf("grid has %d rows, want %d", len(g), game_constants.GridSize)
	}
	seen := make(map[int]bool, game_constants.TotalNumbers)
	for r, row := range g {
		if len(row) != game_constants.GridSize {
			return fmt.Errorf("row %d has %d numbers, want %d", r, len(row), game_constants.GridSize)
		}
		for _, n := range row {
			if n < 1 || n > game_constants.TotalNumbers {
				return fmt.Errorf("number %d out of range", n)
			}
			if seen[n] {
				return fmt.Errorf("number %d repeated", n)
			}
			seen[n] = true
		}
	}
	return nil
}

// MarshalTicket serializes the grid for the jsonb ticket column.
func MarshalTicket(g Grid) ([]byte, error) {
	return json.Marshal(g)
}

// UnmarshalTicket parses and validates a stored ticket grid.
func UnmarshalTicket(data []byte) (Grid, error) {
	var g Grid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("error parsing ticket data: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("corrupt ticket: %w", err)
	}
	return g, nil
}
