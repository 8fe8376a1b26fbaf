package game

import (
	"errors"
	"time"

	game_constants "Quina/constants/game"
	"Quina/models/postgres"
	"Quina/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomSummary is a room row plus its seat count, the shape listings return.
type RoomSummary struct {
	GameRoomID          uuid.UUID  `json:"game_room_id"`
	RoomName            string     `json:"room_name"`
	Status              string     `json:"status"`
	CurrentTurnPlayerID *uuid.UUID `json:"current_turn_player_id"`
	WinnerPlayerID      *uuid.UUID `json:"winner_player_id"`
	IsDraw              bool       `json:"is_draw"`
	CreatedByUserID     uuid.UUID  `json:"created_by_user_id"`
	CreatedAt           time.Time  `json:"created_at"`
	ExpiresAt           time.Time  `json:"expires_at"`
	PlayerCount         int64      `json:"player_count"`
}

// CreateRoom opens a new pending room owned by creatorID, expiring after
// the standard room lifetime.
func (s *Service) CreateRoom(name string, creatorID uuid.UUID) (*postgres.GameRoom, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	if _, err := utils.CheckUserExists(s.DB, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, internalErr(err)
	}

	room := postgres.GameRoom{
		RoomName:        name,
		Status:          game_constants.RoomStatusPending,
		CreatedByUserID: creatorID,
		ExpiresAt:       time.Now().Add(game_constants.RoomLifetime),
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, internalErr(err)
	}
	return &room, nil
}

// ListRooms sweeps expired rooms, then returns the live ones with seat
// counts, newest first. The sweep reuses the same cascade as room deletion.
func (s *Service) ListRooms() ([]RoomSummary, error) {
	if err := s.sweepExpired(); err != nil {
		return nil, err
	}
	return s.listRooms(s.DB.Where("expires_at > ?", time.Now()))
}

// ListUserRooms returns the non-expired rooms a user created.
func (s *Service) ListUserRooms(userID uuid.UUID) ([]RoomSummary, error) {
	return s.listRooms(s.DB.Where("created_by_user_id = ? AND expires_at > ?", userID, time.Now()))
}

// GetRoom returns one room with its seat count; expired rooms read as gone.
func (s *Service) GetRoom(roomID uuid.UUID) (*RoomSummary, error) {
	room, err := loadRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := s.DB.Model(&postgres.Player{}).
		Where("game_room_id = ?", roomID).Count(&count).Error; err != nil {
		return nil, internalErr(err)
	}
	return &RoomSummary{
		GameRoomID:          room.GameRoomID,
		RoomName:            room.RoomName,
		Status:              room.Status,
		CurrentTurnPlayerID: room.CurrentTurnPlayerID,
		WinnerPlayerID:      room.WinnerPlayerID,
		IsDraw:              room.IsDraw,
		CreatedByUserID:     room.CreatedByUserID,
		CreatedAt:           room.CreatedAt,
		ExpiresAt:           room.ExpiresAt,
		PlayerCount:         count,
	}, nil
}

// UpdateRoomStatus moves the room's status forward. Backward transitions
// are rejected: the lifecycle is monotonic, restart is the only way back.
func (s *Service) UpdateRoomStatus(roomID uuid.UUID, status string) error {
	rank, ok := statusRank(status)
	if !ok {
		return ErrInvalidStatus
	}

	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		current, _ := statusRank(room.Status)
		if rank < current {
			return ErrStatusRollback
		}
		if rank == current {
			return nil
		}
		if err := tx.Model(&postgres.GameRoom{}).
			Where("game_room_id = ?", roomID).
			Update("status", status).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
}

// UpdateTurn points the in-progress turn marker at a player of the room.
func (s *Service) UpdateTurn(roomID, playerID uuid.UUID) error {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
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
		if err := tx.Model(&postgres.GameRoom{}).
			Where("game_room_id = ?", roomID).
			Update("current_turn_player_id", playerID).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
}

// DeleteRoom removes a room and everything it owns. Creator-only.
func (s *Service) DeleteRoom(roomID, callerUserID uuid.UUID) error {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// no expiry check here: the creator may delete an expired room
		// that the lazy sweep has not reached yet
		room, err := utils.CheckRoomExists(tx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return internalErr(err)
		}
		if room.CreatedByUserID != callerUserID {
			return ErrNotCreator
		}
		return cascadeDelete(tx, roomID)
	})
	if err != nil {
		return err
	}

	// drop the lock entry before the deferred unlock releases the mutex
	s.Locks.Forget(roomID)
	s.dropLiveState(roomID)
	return nil
}

// sweepExpired deletes every room past its expiry, one cascade transaction
// per room under that room's lock.
func (s *Service) sweepExpired() error {
	var expired []uuid.UUID
	if err := s.DB.Model(&postgres.GameRoom{}).
		Where("expires_at <= ?", time.Now()).
		Pluck("game_room_id", &expired).Error; err != nil {
		return internalErr(err)
	}
	for _, roomID := range expired {
		lock := s.Locks.Lock(roomID)
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return cascadeDelete(tx, roomID)
		})
		if err == nil {
			s.Locks.Forget(roomID)
		}
		lock.Unlock()
		if err != nil {
			return err
		}
		s.dropLiveState(roomID)
	}
	return nil
}

func (s *Service) listRooms(query *gorm.DB) ([]RoomSummary, error) {
	var rooms []postgres.GameRoom
	if err := query.Order("created_at desc").Find(&rooms).Error; err != nil {
		return nil, internalErr(err)
	}

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		var count int64
		if err := s.DB.Model(&postgres.Player{}).
			Where("game_room_id = ?", room.GameRoomID).Count(&count).Error; err != nil {
			return nil, internalErr(err)
		}
		summaries = append(summaries, RoomSummary{
			GameRoomID:          room.GameRoomID,
			RoomName:            room.RoomName,
			Status:              room.Status,
			CurrentTurnPlayerID: room.CurrentTurnPlayerID,
			WinnerPlayerID:      room.WinnerPlayerID,
			IsDraw:              room.IsDraw,
			CreatedByUserID:     room.CreatedByUserID,
			CreatedAt:           room.CreatedAt,
			ExpiresAt:           room.ExpiresAt,
			PlayerCount:         count,
		})
	}
	return summaries, nil
}

func statusRank(status string) (int, bool) {
	switch status {
	case game_constants.RoomStatusPending:
		return 0, true
	case game_constants.RoomStatusActive:
		return 1, true
	case game_constants.RoomStatusCompleted:
		return 2, true
	}
	return 0, false
}
