package postgres

import (
	"time"

	game_constants "Quina/constants/game"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'GameRoom' is one bingo session. It owns its Players, Tickets and
 * DrawnNumbers transitively (cascade-deleted with the room).
 *
 * The turn marker and the recorded outcome are separate columns on purpose:
 * CurrentTurnPlayerID only ever means "whose turn it is", WinnerPlayerID is
 * only set once the room is completed, and IsDraw marks a tie (winner nil).
 */
type GameRoom struct {
	GameRoomID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"game_room_id"`
	RoomName            string     `gorm:"size:100;not null" json:"room_name"`
	Status              string     `gorm:"size:20;not null;default:'pending';index:idx_game_rooms_status" json:"status"`
	CurrentTurnPlayerID *uuid.UUID `gorm:"type:uuid" json:"current_turn_player_id"`
	WinnerPlayerID      *uuid.UUID `gorm:"type:uuid" json:"winner_player_id"`
	IsDraw              bool       `gorm:"default:false" json:"is_draw"`
	CreatedByUserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_game_rooms_creator" json:"created_by_user_id"`
	CreatedAt           time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	ExpiresAt           time.Time  `gorm:"not null;index:idx_game_rooms_expires" json:"expires_at"`

	// Relationships
	Creator      User          `gorm:"foreignKey:CreatedByUserID"`
	Players      []Player      `gorm:"foreignKey:GameRoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tickets      []Ticket      `gorm:"foreignKey:GameRoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	DrawnNumbers []DrawnNumber `gorm:"foreignKey:GameRoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (r *GameRoom) BeforeCreate(tx *gorm.DB) error {
	if r.GameRoomID == uuid.Nil {
		r.GameRoomID = uuid.New()
	}
	if r.Status == "" {
		r.Status = game_constants.RoomStatusPending
	}
	if r.ExpiresAt.IsZero() {
		r.ExpiresAt = time.Now().Add(game_constants.RoomLifetime)
	}
	return nil
}

// Expired reports whether the room is past its expiry timestamp and should
// be treated as deleted by every read path.
func (r *GameRoom) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
