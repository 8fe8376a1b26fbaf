package controllers

import (
	"log"
	"net/http"

	"Quina/services/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Ping is a basic health endpoint
// @Summary Ping the server
// @Description Returns pong
// @Tags health
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// abortWithGameError translates an engine error into the HTTP response.
// The "retryable" flag tells clients whether trying again can ever help.
func abortWithGameError(c *gin.Context, err error) {
	e := game.AsError(err)
	if e.Kind == game.KindInternal {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
	}
	c.JSON(e.HTTPStatus(), gin.H{
		"error":     e.Message,
		"code":      e.Code,
		"retryable": e.Retryable(),
	})
}

// parseUUIDParam reads a uuid path parameter, answering 400 on garbage.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format", "code": "MissingField", "retryable": false})
		return uuid.Nil, false
	}
	return id, true
}
