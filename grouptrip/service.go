package grouptrip

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hoplytravel/hoply-api/models"
)

// Catalog is the destination catalog collaborator. The service only
// needs it to validate vote destination ids; List feeds the public
// destination listing.
type Catalog interface {
	Exists(ctx context.Context, destID string) (bool, error)
	Lookup(ctx context.Context, destID string) (models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
}

// MaxDestinationsPerVote caps how many destinations one vote may pick
const MaxDestinationsPerVote = 3

// Service is the façade the transport layer talks to. It validates
// input, normalizes room codes and delegates to the store and the
// aggregator.
type Service struct {
	store   *RoomStore
	catalog Catalog
}

// NewService wires the store and the destination catalog together
func NewService(store *RoomStore, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// CreateRoom creates a room with the given label and a fresh code
func (s *Service) CreateRoom(name string) (models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Room{}, invalid("name", "must not be empty")
	}
	return s.store.CreateRoom(name)
}

// GetRoom fetches a room snapshot. Codes are case-insensitive.
func (s *Service) GetRoom(code string) (models.Room, error) {
	return s.store.GetRoom(normalizeCode(code))
}

// SubmitVote validates and records one participant's vote. A repeat
// submission under the same participant name replaces the earlier vote
// wholesale, which makes retry-after-timeout safe.
func (s *Service) SubmitVote(ctx context.Context, code, participant string, destinations []string, dateFrom, dateTo models.Date) (models.Room, error) {
	participant = strings.TrimSpace(participant)
	if participant == "" {
		return models.Room{}, invalid("name", "must not be empty")
	}

	destinations = dedupe(destinations)
	if len(destinations) == 0 {
		return models.Room{}, invalid("destinations", "pick at least one destination")
	}
	if len(destinations) > MaxDestinationsPerVote {
		return models.Room{}, invalid("destinations", fmt.Sprintf("pick at most %d destinations", MaxDestinationsPerVote))
	}
	for _, destID := range destinations {
		known, err := s.catalog.Exists(ctx, destID)
		if err != nil {
			return models.Room{}, fmt.Errorf("catalog lookup for %q: %w", destID, err)
		}
		if !known {
			return models.Room{}, invalid("destinations", fmt.Sprintf("unknown destination %q", destID))
		}
	}

	if dateFrom.IsZero() {
		return models.Room{}, invalid("dateFrom", "must be set")
	}
	if dateTo.IsZero() {
		return models.Room{}, invalid("dateTo", "must be set")
	}
	if dateFrom.After(dateTo) {
		return models.Room{}, invalid("dateFrom", "must not be after dateTo")
	}

	vote := models.Vote{
		ID:           uuid.New().String(),
		Name:         participant,
		Destinations: destinations,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		SubmittedAt:  time.Now().UTC(),
	}
	return s.store.UpsertVote(normalizeCode(code), vote)
}

// ComputeResults fetches the room and reduces its votes into the
// results view. Pure read; any number of pollers may call it at once.
func (s *Service) ComputeResults(code string) (models.GroupResults, error) {
	room, err := s.GetRoom(code)
	if err != nil {
		return models.GroupResults{}, err
	}
	return Aggregate(room), nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// dedupe drops repeated ids while keeping first-pick order
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
