package game

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an engine failure. The split matters to callers: only
// Internal failures are worth retrying, everything else is a definitive no.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindAuthorization
	KindState
	KindInternal
)

// Error is the engine's error type. Code is a stable machine-readable
// identifier, Message is what the transport layer may show to users.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error // wrapped cause, set for Internal errors
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match sentinel values by code, so wrapped internal
// causes don't break comparisons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Retryable reports whether the failure is transient (storage fault)
// rather than a definitive rejection.
func (e *Error) Retryable() bool { return e.Kind == KindInternal }

// HTTPStatus maps the error kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict, KindState:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Sentinel rejections. All of them are checked before any state change.
var (
	ErrOutOfRange      = &Error{Kind: KindValidation, Code: "OutOfRange", Message: "number must be between 1 and 25"}
	ErrMissingField    = &Error{Kind: KindValidation, Code: "MissingField", Message: "required field is missing"}
	ErrInvalidStatus   = &Error{Kind: KindValidation, Code: "InvalidStatus", Message: "unknown room status"}
	ErrAlreadyDrawn    = &Error{Kind: KindConflict, Code: "AlreadyDrawn", Message: "number already called in this room"}
	ErrRoomExhausted   = &Error{Kind: KindConflict, Code: "RoomExhausted", Message: "all 25 numbers have been drawn"}
	ErrRoomFull        = &Error{Kind: KindConflict, Code: "RoomFull", Message: "room is full, maximum 2 players allowed"}
	ErrAlreadyJoined   = &Error{Kind: KindConflict, Code: "AlreadyJoined", Message: "user already holds a seat in this room"}
	ErrRoomNotFound    = &Error{Kind: KindNotFound, Code: "RoomNotFound", Message: "room not found"}
	ErrPlayerNotFound  = &Error{Kind: KindNotFound, Code: "PlayerNotFound", Message: "player not found"}
	ErrTicketNotFound  = &Error{Kind: KindNotFound, Code: "TicketNotFound", Message: "ticket not found"}
	ErrUserNotFound    = &Error{Kind: KindNotFound, Code: "UserNotFound", Message: "user not found"}
	ErrNotCreator      = &Error{Kind: KindAuthorization, Code: "NotCreator", Message: "only the room creator can do this"}
	ErrGameAlreadyOver = &Error{Kind: KindState, Code: "GameAlreadyOver", Message: "game is already completed"}
	ErrGameNotOver     = &Error{Kind: KindState, Code: "GameNotOver", Message: "game is still in progress"}
	ErrNotStarted      = &Error{Kind: KindState, Code: "NotStarted", Message: "game has not started yet"}
	ErrNoPlayers       = &Error{Kind: KindState, Code: "NoPlayers", Message: "room has no players left, it cannot be restarted"}
	ErrStatusRollback  = &Error{Kind: KindState, Code: "StatusRollback", Message: "room status can only move forward"}
)

// internalErr wraps a storage fault. The partial work has already been
// rolled back by the transaction when this surfaces.
func internalErr(err error) *Error {
	return &Error{Kind: KindInternal, Code: "InternalError", Message: "internal error", Err: err}
}

// AsError extracts the engine error from err, wrapping foreign errors as
// internal ones so controllers always have a kind to map.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return internalErr(err)
}
