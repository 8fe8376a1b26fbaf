package controllers

import (
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DrawRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
	// no "required" on Number: a literal 0 must reach the range check
	// instead of dying in binding
	Number   int        `json:"number"`
	PlayerID *uuid.UUID `json:"playerId"`
}

// @Summary Draw a number
// @Description Calls one number into the room's ledger; duplicates and out-of-range numbers are rejected before any state change
// @Tags draw
// @Accept json
// @Produce json
// @Param request body controllers.DrawRequest true "Room id, number and optional caller"
// @Success 200 {object} game.DrawResult
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/draw [post]
func DrawNumber(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DrawRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithGameError(c, game.ErrMissingField)
			return
		}
		result, err := svc.DrawNumber(req.RoomID, req.Number, req.PlayerID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// @Summary List drawn numbers
// @Description Returns the room's drawn numbers in call order
// @Tags draw
// @Produce json
// @Param roomId path string true "Room id"
// @Success 200 {object} object{drawnNumbers=[]postgres.DrawnNumber}
// @Failure 404 {object} object{error=string}
// @Router /api/draw/{roomId} [get]
func GetDrawnNumbers(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		drawn, err := svc.ListDrawn(roomID)
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"drawnNumbers": drawn})
	}
}

// @Summary Get the latest draw
// @Description Returns the cached last-draw snapshot for cheap polling. 204 when nothing is cached yet.
// @Tags draw
// @Produce json
// @Param roomId path string true "Room id"
// @Success 200 {object} redis.RoomLiveState
// @Success 204 "no draw cached"
// @Router /api/draw/{roomId}/latest [get]
func GetLatestDraw(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID, ok := parseUUIDParam(c, "roomId")
		if !ok {
			return
		}
		if svc.Redis == nil {
			c.Status(http.StatusNoContent)
			return
		}
		state, err := svc.Redis.GetRoomLiveState(roomID.String())
		if err != nil {
			abortWithGameError(c, err)
			return
		}
		if state == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
