package game

import game_constants "Quina/constants/game"

// CountCompletedLines returns how many of the ticket's rows and columns are
// fully covered by the drawn set (0..10). It is pure: no partial counts are
// cached anywhere, any number of draws may happen between evaluations.
func CountCompletedLines(g Grid, drawn map[int]bool) int {
	lines := 0

	for _, row := range g {
		complete := true
		for _, n := range row {
			if !drawn[n] {
				complete = false
				break
			}
		}
		if complete {
			lines++
		}
	}

	for c := 0; c < game_constants.GridSize; c++ {
		complete := true
		for r := 0; r < game_constants.GridSize; r++ {
			if !drawn[g[r][c]] {
				complete = false
				break
			}
		}
		if complete {
			lines++
		}
	}

	return lines
}

// HasWon reports whether the ticket meets the win threshold against the
// drawn set.
func HasWon(g Grid, drawn map[int]bool) bool {
	return CountCompletedLines(g, drawn) >= game_constants.WinThreshold
}
