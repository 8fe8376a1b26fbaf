package redis

import "time"

// RoomLiveState is the volatile per-room view of the draw ledger kept in
// Redis for cheap polling. Postgres stays authoritative; this is refreshed
// after each committed draw and dropped on restart/delete.
type RoomLiveState struct {
	GameRoomID string    `json:"game_room_id"`
	LastNumber int       `json:"last_number"`
	DrawCount  int       `json:"draw_count"`
	CalledBy   string    `json:"called_by,omitempty"` // player id of the last caller
	UpdatedAt  time.Time `json:"updated_at"`
}
