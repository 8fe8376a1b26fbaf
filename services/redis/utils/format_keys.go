package utils

/**
 * Utility functions to format Redis keys, so the key layout lives in one
 * place instead of repeated fmt.Sprintf calls.
 */

import "fmt"

func FormatRoomLiveStateKey(roomID string) string {
	return fmt.Sprintf("room:%s:live", roomID)
}
