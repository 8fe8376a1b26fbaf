package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Player' is one seat in a room, held by a user. A room seats at most two
 * players and a user holds at most one seat per room (enforced by the
 * composite unique index and re-checked by the engine under the room lock).
 */
type Player struct {
	PlayerID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"player_id"`
	GameRoomID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_players_room_user;index:idx_players_room" json:"game_room_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_players_room_user" json:"user_id"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	GameRoom GameRoom `gorm:"foreignKey:GameRoomID"`
	User     User     `gorm:"foreignKey:UserID"`
	Tickets  []Ticket `gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (p *Player) BeforeCreate(tx *gorm.DB) error {
	if p.PlayerID == uuid.Nil {
		p.PlayerID = uuid.New()
	}
	return nil
}
