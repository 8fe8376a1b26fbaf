package utils

import (
	models "Quina/models/postgres"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckRoomExists fetches a room by id.
func CheckRoomExists(db *gorm.DB, roomID uuid.UUID) (*models.GameRoom, error) {
	var room models.GameRoom
	if err := db.Where("game_room_id = ?", roomID).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// IsUserInRoom returns the user's seat in the room, if any.
func IsUserInRoom(db *gorm.DB, roomID, userID uuid.UUID) (*models.Player, error) {
	var player models.Player
	if err := db.Where("game_room_id = ? AND user_id = ?", roomID, userID).
		First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// CheckUserExists fetches a user by id.
func CheckUserExists(db *gorm.DB, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
