package game

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrOutOfRange.HTTPStatus())
	assert.Equal(t, http.StatusConflict, ErrAlreadyDrawn.HTTPStatus())
	assert.Equal(t, http.StatusConflict, ErrGameAlreadyOver.HTTPStatus())
	assert.Equal(t, http.StatusConflict, ErrGameNotOver.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrRoomNotFound.HTTPStatus())
	assert.Equal(t, http.StatusForbidden, ErrNotCreator.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, internalErr(errors.New("db down")).HTTPStatus())
}

func TestErrorRetryable(t *testing.T) {
	assert.False(t, ErrAlreadyDrawn.Retryable())
	assert.False(t, ErrNotStarted.Retryable())
	assert.True(t, internalErr(errors.New("timeout")).Retryable())
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("draw failed: %w", ErrAlreadyDrawn)
	assert.True(t, errors.Is(wrapped, ErrAlreadyDrawn))
	assert.False(t, errors.Is(wrapped, ErrRoomFull))
}

func TestAsError(t *testing.T) {
	assert.Same(t, ErrRoomFull, AsError(ErrRoomFull))

	e := AsError(errors.New("some storage fault"))
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, "InternalError", e.Code)
}
