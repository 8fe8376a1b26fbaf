package redis

import (
	"testing"
	"time"

	redis_models "Quina/models/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *RedisClient {
	srv := miniredis.RunT(t)
	return NewRedisClient(srv.Addr(), 0)
}

func TestRoomLiveStateRoundTrip(t *testing.T) {
	rc := newTestClient(t)

	state := &redis_models.RoomLiveState{
		GameRoomID: "7f6f5a50-3f06-4d3c-9e4c-1f9f4a3b2c1d",
		LastNumber: 17,
		DrawCount:  4,
		CalledBy:   "a0a1a2a3-b4b5-c6c7-d8d9-e0e1e2e3e4e5",
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, rc.SaveRoomLiveState(state))

	got, err := rc.GetRoomLiveState(state.GameRoomID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 17, got.LastNumber)
	assert.Equal(t, 4, got.DrawCount)
	assert.Equal(t, state.CalledBy, got.CalledBy)
}

func TestGetRoomLiveStateMissing(t *testing.T) {
	rc := newTestClient(t)

	got, err := rc.GetRoomLiveState("nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteRoomLiveState(t *testing.T) {
	rc := newTestClient(t)

	state := &redis_models.RoomLiveState{GameRoomID: "room-1", LastNumber: 3, DrawCount: 1}
	require.NoError(t, rc.SaveRoomLiveState(state))
	require.NoError(t, rc.DeleteRoomLiveState("room-1"))

	got, err := rc.GetRoomLiveState("room-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
