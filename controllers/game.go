package controllers

import (
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomActionRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
}

// @Summary Evaluate the winner
// @Description Evaluates every ticket against the drawn set as one batch. One qualifier wins; two or more is a draw.
// @Tags game
// @Accept json
// @Produce json
// @Param request body controllers.RoomActionRequest true "Room id"
// @Success 200 {object} game.Outcome
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/game/check-winner [post]
func CheckWinner(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		outcome, err := svc.CheckWinner(req.RoomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// @Summary Get the recorded winner
// @Description Reports the room's recorded outcome without evaluating anything
// @Tags game
// @Produce json
// @Param roomId path string true "Room id"
// @Success 200 {object} game.Outcome
// @Failure 404 {object} object{error=string}
// @Router /api/game/{roomId}/winner [get]
func GetWinner(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		outcome, err := svc.GetOutcome(roomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, outcome)
	}
}

// @Summary Restart a game
// @Description Atomically erases the draw ledger, regenerates every player's ticket, clears the outcome and sets the room active again
// @Tags game
// @Accept json
// @Produce json
// @Param request body controllers.RoomActionRequest true "Room id"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/game/restart [post]
func RestartGame(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		if err := svc.Restart(req.RoomID); err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game restarted"})
	}
}
