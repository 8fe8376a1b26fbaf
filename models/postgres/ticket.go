package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'Ticket' is a player's 5x5 grid for one room, stored as jsonb
 * ([[5 ints] x 5], rows in play order). A player has exactly one ticket per
 * room at any time; regeneration replaces the row, it never patches it.
 */
type Ticket struct {
	TicketID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"ticket_id"`
	PlayerID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_tickets_player" json:"player_id"`
	GameRoomID uuid.UUID      `gorm:"type:uuid;not null;index:idx_tickets_room" json:"game_room_id"`
	TicketData datatypes.JSON `gorm:"type:jsonb;not null" json:"ticket_data"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Player   Player   `gorm:"foreignKey:PlayerID"`
	GameRoom GameRoom `gorm:"foreignKey:GameRoomID"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.TicketID == uuid.Nil {
		t.TicketID = uuid.New()
	}
	return nil
}
