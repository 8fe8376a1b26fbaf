package game

import (
	"errors"

	game_constants "Quina/constants/game"
	"Quina/models/postgres"
	"Quina/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerInfo is a seat plus its user's display name.
type PlayerInfo struct {
	PlayerID uuid.UUID `json:"player_id"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Join seats a user in a room and deals them a fresh ticket. The second
// join, and only it, flips the room from pending to active.
func (s *Service) Join(roomID, userID uuid.UUID) (*postgres.Player, error) {
	if _, err := utils.CheckUserExists(s.DB, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, internalErr(err)
	}

	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	var player postgres.Player
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		if room.Status == game_constants.RoomStatusCompleted {
			return ErrGameAlreadyOver
		}

		var seats []postgres.Player
		if err := tx.Where("game_room_id = ?", roomID).Find(&seats).Error; err != nil {
			return internalErr(err)
		}
		if len(seats) >= game_constants.MaxPlayersPerRoom {
			return ErrRoomFull
		}
		for _, seat := range seats {
			if seat.UserID == userID {
				return ErrAlreadyJoined
			}
		}

		player = postgres.Player{GameRoomID: roomID, UserID: userID}
		if err := tx.Create(&player).Error; err != nil {
			return internalErr(err)
		}

		data, err := MarshalTicket(GenerateGrid(s.Rng))
		if err != nil {
			return internalErr(err)
		}
		ticket := postgres.Ticket{
			PlayerID:   player.PlayerID,
			GameRoomID: roomID,
			TicketData: data,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			return internalErr(err)
		}

		// second seat starts the game
		if len(seats)+1 == game_constants.MaxPlayersPerRoom &&
			room.Status == game_constants.RoomStatusPending {
			if err := tx.Model(&postgres.GameRoom{}).
				Where("game_room_id = ?", roomID).
				Update("status", game_constants.RoomStatusActive).Error; err != nil {
				return internalErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// Leave removes a user's seat and its ticket. It never reverts an active
// room to pending; a vacated seat does not un-start a game in progress.
func (s *Service) Leave(roomID, userID uuid.UUID) error {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := loadRoom(tx, roomID); err != nil {
			return err
		}
		player, err := utils.IsUserInRoom(tx, roomID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPlayerNotFound
			}
			return internalErr(err)
		}
		if err := tx.Where("player_id = ?", player.PlayerID).
			Delete(&postgres.Ticket{}).Error; err != nil {
			return internalErr(err)
		}
		if err := tx.Delete(player).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
}

// ListPlayers returns the room's seats with usernames, in join order.
func (s *Service) ListPlayers(roomID uuid.UUID) ([]PlayerInfo, error) {
	if _, err := loadRoom(s.DB, roomID); err != nil {
		return nil, err
	}

	var players []postgres.Player
	if err := s.DB.Preload("User").Where("game_room_id = ?", roomID).
		Order("created_at asc").Find(&players).Error; err != nil {
		return nil, internalErr(err)
	}

	infos := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		infos = append(infos, PlayerInfo{
			PlayerID: p.PlayerID,
			UserID:   p.UserID,
			Username: p.User.Username,
		})
	}
	return infos, nil
}
