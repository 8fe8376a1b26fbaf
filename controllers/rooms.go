package controllers

import (
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomName string    `json:"roomName" binding:"required"`
	UserID   uuid.UUID `json:"userId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateTurnRequest struct {
	PlayerID uuid.UUID `json:"playerId" binding:"required"`
}

// @Summary Create a new room
// @Description Creates a pending room owned by the given user, expiring in 24h
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body controllers.CreateRoomRequest true "Room name and creator id"
// @Success 200 {object} object{game_room_id=string,room_name=string,status=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms [post]
func CreateRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		room, err := svc.CreateRoom(req.RoomName, req.UserID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"game_room_id":       room.GameRoomID,
			"room_name":          room.RoomName,
			"status":             room.Status,
			"player_count":       0,
			"created_by_user_id": room.CreatedByUserID,
			"expires_at":         room.ExpiresAt,
		})
	}
}

// @Summary List active rooms
// @Description Sweeps expired rooms, then returns the remaining ones with player counts
// @Tags rooms
// @Produce json
// @Success 200 {array} game.RoomSummary
// @Failure 500 {object} object{error=string}
// @Router /api/rooms [get]
func GetAllRooms(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := svc.ListRooms()
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

// @Summary Get a room
// @Description Returns one room with its player count; expired rooms read as 404
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room id"
// @Success 200 {object} game.RoomSummary
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{roomId} [get]
func GetRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		room, err := svc.GetRoom(roomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// @Summary Update room status
// @Description Moves the room status forward (pending->active->completed); rollbacks are rejected
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomId path string true "Room id"
// @Param request body controllers.UpdateStatusRequest true "New status"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/rooms/{roomId} [put]
func UpdateRoomStatus(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		if err := svc.UpdateRoomStatus(roomID, req.Status); err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Room updated"})
	}
}

// @Summary Delete a room
// @Description Cascade-deletes a room and everything it owns. Creator only.
// @Tags rooms
// @Produce json
// @Param roomId path string true "Room id"
// @Param userId query string true "Caller user id"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/rooms/{roomId} [delete]
func DeleteRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		userID, err := uuid.Parse(c.Query("userId"))
		if err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		if err := svc.DeleteRoom(roomID, userID); err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
	}
}

// @Summary List a user's rooms
// @Description Returns the non-expired rooms created by the user
// @Tags rooms
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} game.RoomSummary
// @Failure 400 {object} object{error=string}
// @Router /api/rooms/user/{userId} [get]
func GetUserRooms(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUUIDParam(c, "userId")
		if !ok {
			return
		}
		rooms, err := svc.ListUserRooms(userID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

// @Summary Update the turn marker
// @Description Points the room's current-turn marker at one of its players
// @Tags rooms
// @Accept json
// @Produce json
// @Param roomId path string true "Room id"
// @Param request body controllers.UpdateTurnRequest true "Player id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/rooms/{roomId}/turn [put]
func UpdateTurn(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		var req UpdateTurnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		if err := svc.UpdateTurn(roomID, req.PlayerID); err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Turn updated"})
	}
}
