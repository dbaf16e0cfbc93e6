package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hoplytravel/hoply-api/grouptrip"
)

// Scheduler handles periodic background jobs for the group trip engine
type Scheduler struct {
	cron  *cron.Cron
	store *grouptrip.RoomStore
	ttl   time.Duration
}

// New creates a new scheduler instance. A ttl of zero disables room
// eviction entirely, matching ROOM_TTL=0.
func New(store *grouptrip.RoomStore, ttl time.Duration) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		store: store,
		ttl:   ttl,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	if s.ttl <= 0 {
		zap.S().Info("Room eviction disabled, rooms live until restart")
		return
	}

	// Sweep for expired rooms every 10 minutes
	_, err := s.cron.AddFunc("*/10 * * * *", s.evictExpiredRooms)
	if err != nil {
		zap.S().Errorw("failed to register room eviction job", "error", err)
	}

	s.cron.Start()
	zap.S().Infow("Room eviction scheduler started", "ttl", s.ttl)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Room eviction scheduler stopped")
}

// evictExpiredRooms drops rooms older than the configured TTL
func (s *Scheduler) evictExpiredRooms() {
	evicted := s.store.EvictExpired(s.ttl)
	if evicted > 0 {
		zap.S().Infow("Evicted expired group trip rooms",
			"count", evicted,
			"remaining", s.store.Len(),
		)
	}
}
