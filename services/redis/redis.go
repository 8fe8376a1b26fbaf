package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "Quina/models/redis"
	redis_utils "Quina/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client for the volatile per-room state.
// Postgres is authoritative; anything stored here may be rebuilt from it.
type RedisClient struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Addr may be a plain
// host:port or a full redis:// URL (remote deployments).
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if opt, err := redis.ParseURL(Addr); err == nil {
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		Client: client,
		Ctx:    context.Background(),
	}
}

// SaveRoomLiveState stores the last-draw snapshot for a room.
// Key format: "room:{id}:live", TTL 24 hours.
func (rc *RedisClient) SaveRoomLiveState(state *redis_models.RoomLiveState) error {
	key := redis_utils.FormatRoomLiveStateKey(state.GameRoomID)
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling room live state: %v", err)
	}
	return rc.Client.Set(rc.Ctx, key, data, 24*time.Hour).Err()
}

// GetRoomLiveState retrieves a room's last-draw snapshot. Returns
// (nil, nil) when no draw has been cached for the room.
func (rc *RedisClient) GetRoomLiveState(roomID string) (*redis_models.RoomLiveState, error) {
	key := redis_utils.FormatRoomLiveStateKey(roomID)
	data, err := rc.Client.Get(rc.Ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting room live state: %v", err)
	}
	var state redis_models.RoomLiveState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("error unmarshaling room live state: %v", err)
	}
	return &state, nil
}

// DeleteRoomLiveState removes a room's snapshot (on restart or deletion).
func (rc *RedisClient) DeleteRoomLiveState(roomID string) error {
	key := redis_utils.FormatRoomLiveStateKey(roomID)
	if err := rc.Client.Del(rc.Ctx, key).Err(); err != nil {
		log.Printf("Error deleting room live state for %s: %v", roomID, err)
		return err
	}
	return nil
}
