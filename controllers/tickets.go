package controllers

import (
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GenerateTicketRequest struct {
	RoomID   uuid.UUID `json:"roomId" binding:"required"`
	PlayerID uuid.UUID `json:"playerId" binding:"required"`
}

// @Summary Generate a ticket
// @Description Replaces the player's ticket with a freshly shuffled 5x5 grid
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body controllers.GenerateTicketRequest true "Room and player ids"
// @Success 200 {object} object{message=string,ticket=[][]int}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/tickets/generate [post]
func GenerateTicket(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GenerateTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		grid, err := svc.GenerateTicket(req.RoomID, req.PlayerID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ticket generated", "ticket": grid})
	}
}

// @Summary Get a player's ticket
// @Description Returns the player's current 5x5 grid
// @Tags tickets
// @Produce json
// @Param playerId path string true "Player id"
// @Success 200 {object} object{ticket=[][]int}
// @Failure 404 {object} object{error=string}
// @Router /api/tickets/{playerId} [get]
func GetTicket(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		playerID, ok := parseUUIDParam(c, "playerId")
		if !ok {
			return
		}
		grid, err := svc.GetTicket(playerID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ticket": grid})
	}
}
