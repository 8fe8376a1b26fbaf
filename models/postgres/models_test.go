package postgres_test

import (
	"os"
	"testing"
	"time"

	config "Quina/config"
	"Quina/models/postgres"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func connectTestDB(t *testing.T) *gorm.DB {
	if os.Getenv("POSTGRES_HOST") == "" {
		t.Skip("POSTGRES_HOST not set, skipping database test")
	}
	db, err := config.ConnectGORM()
	if err != nil {
		t.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	if err := config.MigrateDatabase(db); err != nil {
		t.Fatalf("Error migrating database: %v", err)
	}
	return db
}

func TestRoomOwnershipRoundTrip(t *testing.T) {
	db := connectTestDB(t)

	user := postgres.User{
		Username:     "model_test_user_" + time.Now().Format("150405.000"),
		Email:        "model_test_" + time.Now().Format("150405.000") + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)
	defer db.Where("user_id = ?", user.UserID).Delete(&postgres.User{})

	room := postgres.GameRoom{
		RoomName:        "model test room",
		CreatedByUserID: user.UserID,
	}
	require.NoError(t, db.Create(&room).Error)
	defer func() {
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.DrawnNumber{})
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.Ticket{})
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.Player{})
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.GameRoom{})
	}()

	// hook-assigned defaults
	assert.NotEqual(t, "", room.GameRoomID.String())
	assert.Equal(t, "pending", room.Status)
	assert.True(t, room.ExpiresAt.After(time.Now()), "expiry defaults into the future")

	player := postgres.Player{GameRoomID: room.GameRoomID, UserID: user.UserID}
	require.NoError(t, db.Create(&player).Error)

	ticket := postgres.Ticket{
		PlayerID:   player.PlayerID,
		GameRoomID: room.GameRoomID,
		TicketData: datatypes.JSON(`[[1,2,3,4,5],[6,7,8,9,10],[11,12,13,14,15],[16,17,18,19,20],[21,22,23,24,25]]`),
	}
	require.NoError(t, db.Create(&ticket).Error)

	entry := postgres.DrawnNumber{
		GameRoomID: room.GameRoomID,
		Number:     12,
		Sequence:   1,
		PlayerID:   &player.PlayerID,
	}
	require.NoError(t, db.Create(&entry).Error)

	var loaded postgres.GameRoom
	require.NoError(t, db.
		Preload("Players").Preload("Tickets").Preload("DrawnNumbers").
		Where("game_room_id = ?", room.GameRoomID).First(&loaded).Error)
	assert.Len(t, loaded.Players, 1)
	assert.Len(t, loaded.Tickets, 1)
	require.Len(t, loaded.DrawnNumbers, 1)
	assert.Equal(t, 12, loaded.DrawnNumbers[0].Number)
}

func TestDrawnNumberUniquePerRoom(t *testing.T) {
	db := connectTestDB(t)

	user := postgres.User{
		Username:     "dup_test_user_" + time.Now().Format("150405.000"),
		Email:        "dup_test_" + time.Now().Format("150405.000") + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)
	defer db.Where("user_id = ?", user.UserID).Delete(&postgres.User{})

	room := postgres.GameRoom{RoomName: "dup test room", CreatedByUserID: user.UserID}
	require.NoError(t, db.Create(&room).Error)
	defer func() {
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.DrawnNumber{})
		db.Where("game_room_id = ?", room.GameRoomID).Delete(&postgres.GameRoom{})
	}()

	first := postgres.DrawnNumber{GameRoomID: room.GameRoomID, Number: 7, Sequence: 1}
	require.NoError(t, db.Create(&first).Error)

	// same number in the same room violates the unique index
	dup := postgres.DrawnNumber{GameRoomID: room.GameRoomID, Number: 7, Sequence: 2}
	assert.Error(t, db.Create(&dup).Error)
}
