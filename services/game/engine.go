package game

import (
	"errors"
	"log"
	"math/rand"
	"time"

	game_constants "Quina/constants/game"
	"Quina/models/postgres"
	redis_models "Quina/models/redis"
	redis_service "Quina/services/redis"
	roomsync "Quina/sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * Service is the game-session engine. Every mutating operation takes the
 * room's mutex from Locks and then runs its reads and writes inside one
 * transaction, so "check drawn set then insert" and "check status then
 * transition" are atomic per room. Redis only ever holds derived state and
 * is written after commit, best-effort.
 */
type Service struct {
	DB    *gorm.DB
	Redis *redis_service.RedisClient // optional, may be nil
	Locks *roomsync.RoomLockManager
	Rng   *rand.Rand // optional deterministic source for ticket shuffles
}

func NewService(db *gorm.DB, rc *redis_service.RedisClient) *Service {
	return &Service{
		DB:    db,
		Redis: rc,
		Locks: roomsync.NewRoomLockManager(),
	}
}

// DrawResult is what an accepted draw reports back.
type DrawResult struct {
	Number   int        `json:"last_number"`
	Sequence int        `json:"sequence"`
	PlayerID *uuid.UUID `json:"player_id"`
}

// Outcome is the recorded result of a room once (or while) it is decided.
type Outcome struct {
	Status         string     `json:"status"`
	WinnerPlayerID *uuid.UUID `json:"winner_player_id"`
	IsDraw         bool       `json:"is_draw"`
}

// DrawNumber validates and appends one number to the room's draw ledger.
// playerID, when set, records who called it. All checks run before the
// insert, under the room lock, inside one transaction.
func (s *Service) DrawNumber(roomID uuid.UUID, number int, playerID *uuid.UUID) (*DrawResult, error) {
	if number < 1 || number > game_constants.TotalNumbers {
		return nil, ErrOutOfRange
	}

	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	var result DrawResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		switch room.Status {
		case game_constants.RoomStatusCompleted:
			return ErrGameAlreadyOver
		case game_constants.RoomStatusPending:
			return ErrNotStarted
		}

		var drawn []postgres.DrawnNumber
		if err := tx.Where("game_room_id = ?", roomID).Find(&drawn).Error; err != nil {
			return internalErr(err)
		}
		if len(drawn) >= game_constants.TotalNumbers {
			return ErrRoomExhausted
		}
		for _, d := range drawn {
			if d.Number == number {
				return ErrAlreadyDrawn
			}
		}

		entry := postgres.DrawnNumber{
			GameRoomID: roomID,
			Number:     number,
			Sequence:   len(drawn) + 1,
			PlayerID:   playerID,
			DrawTime:   time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return internalErr(err)
		}

		result = DrawResult{Number: number, Sequence: entry.Sequence, PlayerID: playerID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cacheLiveState(roomID, &result)
	return &result, nil
}

// ListDrawn returns the room's drawn numbers in call order. Read-only.
func (s *Service) ListDrawn(roomID uuid.UUID) ([]postgres.DrawnNumber, error) {
	if _, err := loadRoom(s.DB, roomID); err != nil {
		return nil, err
	}
	var drawn []postgres.DrawnNumber
	if err := s.DB.Where("game_room_id = ?", roomID).
		Order("sequence asc").Find(&drawn).Error; err != nil {
		return nil, internalErr(err)
	}
	return drawn, nil
}

// CheckWinner evaluates every ticket in the room against the drawn set as
// one batch. Exactly one qualifier becomes the sole winner; two or more in
// the same batch is recorded as a draw, never an arbitrary pick. The room
// transitions to completed in the same transaction.
func (s *Service) CheckWinner(roomID uuid.UUID) (*Outcome, error) {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	var outcome Outcome
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		if room.Status == game_constants.RoomStatusCompleted {
			outcome = Outcome{Status: room.Status, WinnerPlayerID: room.WinnerPlayerID, IsDraw: room.IsDraw}
			return nil
		}
		if room.Status == game_constants.RoomStatusPending {
			return ErrNotStarted
		}

		drawn, err := drawnSet(tx, roomID)
		if err != nil {
			return err
		}

		var tickets []postgres.Ticket
		if err := tx.Where("game_room_id = ?", roomID).Find(&tickets).Error; err != nil {
			return internalErr(err)
		}

		var winners []uuid.UUID
		for _, t := range tickets {
			grid, err := UnmarshalTicket(t.TicketData)
			if err != nil {
				return internalErr(err)
			}
			if HasWon(grid, drawn) {
				winners = append(winners, t.PlayerID)
			}
		}

		outcome = Outcome{Status: room.Status}
		if len(winners) == 0 {
			return nil
		}

		updates := map[string]interface{}{
			"status":  game_constants.RoomStatusCompleted,
			"is_draw": false,
		}
		if len(winners) == 1 {
			winner := winners[0]
			updates["winner_player_id"] = winner
			outcome.WinnerPlayerID = &winner
		} else {
			updates["winner_player_id"] = nil
			updates["is_draw"] = true
			outcome.IsDraw = true
		}
		outcome.Status = game_constants.RoomStatusCompleted

		if err := tx.Model(&postgres.GameRoom{}).
			Where("game_room_id = ?", roomID).Updates(updates).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// GetOutcome reports the room's recorded result without evaluating anything.
func (s *Service) GetOutcome(roomID uuid.UUID) (*Outcome, error) {
	room, err := loadRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}
	return &Outcome{Status: room.Status, WinnerPlayerID: room.WinnerPlayerID, IsDraw: room.IsDraw}, nil
}

// Restart revives a completed room: erase the draw ledger, replace every
// player's ticket, clear the recorded outcome, set the room active and give
// the first-joined player the opening turn. All of it in one transaction;
// a concurrent reader sees either the old game or the new one, nothing in
// between. Only completed rooms restart: the second join stays the one path
// that activates a pending room.
func (s *Service) Restart(roomID uuid.UUID) error {
	lock := s.Locks.Lock(roomID)
	defer lock.Unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := loadRoom(tx, roomID)
		if err != nil {
			return err
		}
		switch room.Status {
		case game_constants.RoomStatusPending:
			return ErrNotStarted
		case game_constants.RoomStatusActive:
			return ErrGameNotOver
		}

		var players []postgres.Player
		if err := tx.Where("game_room_id = ?", roomID).
			Order("created_at asc").Find(&players).Error; err != nil {
			return internalErr(err)
		}
		if len(players) == 0 {
			return ErrNoPlayers
		}

		if err := tx.Where("game_room_id = ?", roomID).
			Delete(&postgres.DrawnNumber{}).Error; err != nil {
			return internalErr(err)
		}
		if err := tx.Where("game_room_id = ?", roomID).
			Delete(&postgres.Ticket{}).Error; err != nil {
			return internalErr(err)
		}
		for _, p := range players {
			data, err := MarshalTicket(GenerateGrid(s.Rng))
			if err != nil {
				return internalErr(err)
			}
			ticket := postgres.Ticket{
				PlayerID:   p.PlayerID,
				GameRoomID: roomID,
				TicketData: data,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				return internalErr(err)
			}
		}

		firstTurn := players[0].PlayerID
		updates := map[string]interface{}{
			"status":                 game_constants.RoomStatusActive,
			"winner_player_id":       nil,
			"is_draw":                false,
			"current_turn_player_id": firstTurn,
		}
		if err := tx.Model(&postgres.GameRoom{}).
			Where("game_room_id = ?", roomID).Updates(updates).Error; err != nil {
			return internalErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.dropLiveState(roomID)
	return nil
}

// loadRoom fetches a room, treating expired rooms as gone.
func loadRoom(tx *gorm.DB, roomID uuid.UUID) (*postgres.GameRoom, error) {
	var room postgres.GameRoom
	if err := tx.Where("game_room_id = ?", roomID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, internalErr(err)
	}
	if room.Expired(time.Now()) {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

// drawnSet loads the room's drawn numbers as a membership set.
func drawnSet(tx *gorm.DB, roomID uuid.UUID) (map[int]bool, error) {
	var numbers []int
	if err := tx.Model(&postgres.DrawnNumber{}).
		Where("game_room_id = ?", roomID).Pluck("number", &numbers).Error; err != nil {
		return nil, internalErr(err)
	}
	set := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		set[n] = true
	}
	return set, nil
}

// cascadeDelete removes a room and everything it owns inside tx, in
// dependency order.
func cascadeDelete(tx *gorm.DB, roomID uuid.UUID) error {
	if err := tx.Where("game_room_id = ?", roomID).Delete(&postgres.DrawnNumber{}).Error; err != nil {
		return internalErr(err)
	}
	if err := tx.Where("game_room_id = ?", roomID).Delete(&postgres.Ticket{}).Error; err != nil {
		return internalErr(err)
	}
	if err := tx.Where("game_room_id = ?", roomID).Delete(&postgres.Player{}).Error; err != nil {
		return internalErr(err)
	}
	if err := tx.Where("game_room_id = ?", roomID).Delete(&postgres.GameRoom{}).Error; err != nil {
		return internalErr(err)
	}
	return nil
}

func (s *Service) cacheLiveState(roomID uuid.UUID, res *DrawResult) {
	if s.Redis == nil {
		return
	}
	state := &redis_models.RoomLiveState{
		GameRoomID: roomID.String(),
		LastNumber: res.Number,
		DrawCount:  res.Sequence,
		UpdatedAt:  time.Now(),
	}
	if res.PlayerID != nil {
		state.CalledBy = res.PlayerID.String()
	}
	if err := s.Redis.SaveRoomLiveState(state); err != nil {
		log.Printf("Warning: could not cache live state for room %s: %v", roomID, err)
	}
}

func (s *Service) dropLiveState(roomID uuid.UUID) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.DeleteRoomLiveState(roomID.String()); err != nil {
		log.Printf("Warning: could not drop live state for room %s: %v", roomID, err)
	}
}
