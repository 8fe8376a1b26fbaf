package sync

import (
	"sync"

	"github.com/google/uuid"
)

// RoomLockManager hands out one mutex per room so that every
// check-then-write sequence (draw acceptance, status transitions, joins,
// restart) is serialized per room. Rooms never contend with each other.
type RoomLockManager struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewRoomLockManager() *RoomLockManager {
	return &RoomLockManager{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Lock acquires the room's mutex, creating it on first use, and returns it.
// Callers unlock the returned mutex rather than looking it up again, so a
// lock held across the room's deletion still unlocks the instance it holds.
func (m *RoomLockManager) Lock(roomID uuid.UUID) *sync.Mutex {
	l := m.room(roomID)
	l.Lock()
	return l
}

// Forget drops the entry for a room being deleted. Call it while still
// holding the room's mutex: no new caller can then reach the old mutex
// through the map, and anyone already waiting on it serializes behind the
// holder and finds the room gone.
func (m *RoomLockManager) Forget(roomID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, roomID)
}

func (m *RoomLockManager) room(roomID uuid.UUID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[roomID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[roomID] = l
	}
	return l
}
