package game

import (
	"errors"

	game_constants "Quina/constants/game"
	"Quina/models/postgres"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateTicket replaces a player's ticket with a freshly shuffled grid.
// The old row is deleted and the new one inserted in the same transaction,
// so the player always has exactly one ticket per room.
func (s *Service) GenerateTicket(roomID, playerID uuid.UUID) (Grid, error) {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	var grid Grid
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		if room.Status == game_constants.RoomStatusCompleted {
			return ErrGameAlreadyOver
		}
		var player postgres.Player
		if err := tx.Where("player_id = ? AND game_room_id = ?", playerID, roomID).
			First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return internalErr(err)
		}

		if err := tx.Where("player_id = ? AND game_room_id = ?", playerID, roomID).
			Delete(&postgres.Ticket{}).Error; err != nil {
			return internalErr(err)
		}

		grid = GenerateGrid(s.Rng)
		data, err := MarshalTicket(grid)
		if err != nil {
			return internalErr(err)
		}
		ticket := postgres.Ticket{
			PlayerID:   playerID,
			GameRoomID: roomID,
			TicketData: data,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grid, nil
}

// GetTicket returns the player's current ticket grid.
func (s *Service) GetTicket(playerID uuid.UUID) (Grid, error) {
	var ticket postgres.Ticket
	if err := s.DB.Where("player_id = ?", playerID).
		Order("created_at desc").First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, internalErr(err)
	}
	return UnmarshalTicket(ticket.TicketData)
}
