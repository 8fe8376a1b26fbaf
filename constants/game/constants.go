package game_constants

import "time"

const GridSize = 5
const TotalNumbers = GridSize * GridSize // tickets partition 1..25
const WinThreshold = 5                   // completed lines (rows + columns) needed to win
const MaxPlayersPerRoom = 2

// Rooms become eligible for deletion once this much time has passed
// since their creation. Expiry is checked lazily at read time.
const RoomLifetime = 24 * time.Hour

// Room lifecycle statuses. Transitions are monotonic:
// pending -> active -> completed (restart is the only way back to active).
const (
	RoomStatusPending   = "pending"
	RoomStatusActive    = "active"
	RoomStatusCompleted = "completed"
)
