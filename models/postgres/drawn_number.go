package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'DrawnNumber' is one entry in a room's append-only draw ledger. A number
 * appears at most once per room (unique index), and 'Sequence' is the
 * server-assigned call order, authoritative for draw ordering.
 */
type DrawnNumber struct {
	DrawID     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"draw_id"`
	GameRoomID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_drawn_numbers_room_number;index:idx_drawn_numbers_room" json:"game_room_id"`
	Number     int        `gorm:"not null;uniqueIndex:idx_drawn_numbers_room_number" json:"number"`
	Sequence   int        `gorm:"not null" json:"sequence"`
	PlayerID   *uuid.UUID `gorm:"type:uuid" json:"player_id"` // who called it, for audit/turn display
	DrawTime   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"draw_time"`

	// Relationships
	GameRoom GameRoom `gorm:"foreignKey:GameRoomID"`
}

func (d *DrawnNumber) BeforeCreate(tx *gorm.DB) error {
	if d.DrawID == uuid.Nil {
		d.DrawID = uuid.New()
	}
	return nil
}
