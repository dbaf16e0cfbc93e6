package grouptrip

import (
	"sync"
	"time"

	"github.com/hoplytravel/hoply-api/models"
)

// RoomStore owns the in-memory room table. All reads hand out snapshot
// copies and all writes are serialized per room, so two participants
// voting at the same instant are both recorded and writers on different
// rooms never contend with each other.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*roomEntry
	codes *CodeGenerator
	now   func() time.Time
}

// roomEntry pairs a room with the mutex that serializes its writers
type roomEntry struct {
	mu   sync.Mutex
	room models.Room
}

// NewRoomStore returns an empty store
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*roomEntry),
		codes: NewCodeGenerator(),
		now:   time.Now,
	}
}

// CreateRoom allocates a fresh code, inserts an empty room under it and
// returns a snapshot of the new room.
func (s *RoomStore) CreateRoom(name string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.codes.Generate(func(code string) bool {
		_, exists := s.rooms[code]
		return exists
	})
	if err != nil {
		return models.Room{}, err
	}

	entry := &roomEntry{room: models.Room{
		Code:      code,
		Name:      name,
		CreatedAt: s.now().UTC(),
		Votes:     []models.Vote{},
	}}
	s.rooms[code] = entry
	return snapshot(entry.room), nil
}

// GetRoom returns a snapshot of the room stored under code, or
// ErrRoomNotFound. Callers may mutate the returned value freely.
func (s *RoomStore) GetRoom(code string) (models.Room, error) {
	entry, err := s.entry(code)
	if err != nil {
		return models.Room{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return snapshot(entry.room), nil
}

// UpsertVote atomically records vote in the room stored under code,
// replacing any prior vote by the same participant name in place so the
// room keeps its first-submission ordering. Returns the updated snapshot.
func (s *RoomStore) UpsertVote(code string, vote models.Vote) (models.Room, error) {
	entry, err := s.entry(code)
	if err != nil {
		return models.Room{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	replaced := false
	for i := range entry.room.Votes {
		if entry.room.Votes[i].Name == vote.Name {
			entry.room.Votes[i] = vote
			replaced = true
			break
		}
	}
	if !replaced {
		entry.room.Votes = append(entry.room.Votes, vote)
	}
	return snapshot(entry.room), nil
}

// Len returns the number of live rooms
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// EvictExpired drops every room whose CreatedAt is older than ttl and
// returns how many were removed. A ttl <= 0 evicts nothing.
func (s *RoomStore) EvictExpired(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}

	cutoff := s.now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for code, entry := range s.rooms {
		if entry.room.CreatedAt.Before(cutoff) {
			delete(s.rooms, code)
			evicted++
		}
	}
	return evicted
}

func (s *RoomStore) entry(code string) (*roomEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return entry, nil
}

// snapshot deep-copies a room so the stored state cannot be reached
// through values handed to callers
func snapshot(room models.Room) models.Room {
	out := room
	out.Votes = make([]models.Vote, len(room.Votes))
	for i, v := range room.Votes {
		out.Votes[i] = v
		out.Votes[i].Destinations = append([]string(nil), v.Destinations...)
	}
	return out
}
