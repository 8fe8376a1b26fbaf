package controllers

import (
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JoinRoomRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
	UserID uuid.UUID `json:"userId" binding:"required"`
}

// @Summary Join a room
// @Description Seats the user in the room and deals them a ticket; the second join starts the game
// @Tags players
// @Accept json
// @Produce json
// @Param request body controllers.JoinRoomRequest true "Room and user ids"
// @Success 200 {object} object{player_id=string,player_count=integer}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/players/join [post]
func JoinRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		player, err := svc.Join(req.RoomID, req.UserID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		players, err := svc.ListPlayers(req.RoomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"player_id":    player.PlayerID,
			"player_count": len(players),
		})
	}
}

// @Summary Leave a room
// @Description Removes the user's seat and its ticket; never un-starts a game
// @Tags players
// @Accept json
// @Produce json
// @Param request body controllers.JoinRoomRequest true "Room and user ids"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/players/leave [post]
func LeaveRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		if err := svc.Leave(req.RoomID, req.UserID); err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Player removed"})
	}
}

// @Summary List players in a room
// @Description Returns the room's seats with usernames, in join order
// @Tags players
// @Produce json
// @Param roomId path string true "Room id"
// @Success 200 {array} game.PlayerInfo
// @Failure 404 {object} object{error=string}
// @Router /api/players/room/{roomId} [get]
func GetPlayersInRoom(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		players, err := svc.ListPlayers(roomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, players)
	}
}
