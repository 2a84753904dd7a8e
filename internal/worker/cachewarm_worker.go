package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clubsync/events-backend/internal/service"
)

// CacheWarmWorker periodically refreshes the Redis list caches so the
// poster-heavy listing endpoints keep serving from cache even after TTL
// expiry, instead of letting the first reader pay for the miss.
type CacheWarmWorker struct {
	events        *service.EventService
	announcements *service.AnnouncementService
	interval      time.Duration
	log           zerolog.Logger
}

// NewCacheWarmWorker creates a new CacheWarmWorker.
func NewCacheWarmWorker(
	events *service.EventService,
	announcements *service.AnnouncementService,
	interval time.Duration,
	log zerolog.Logger,
) *CacheWarmWorker {
	return &CacheWarmWorker{
		events:        events,
		announcements: announcements,
		interval:      interval,
		log:           log.With().Str("component", "cachewarm_worker").Logger(),
	}
}

// Start begins the refresh loop. Call in a goroutine.
func (w *CacheWarmWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheWarmWorker) refresh(ctx context.Context) {
	if err := w.events.WarmCache(ctx); err != nil {
		w.log.Warn().Err(err).Msg("Event cache refresh failed")
	}
	if err := w.announcements.WarmCache(ctx); err != nil {
		w.log.Warn().Err(err).Msg("Announcement cache refresh failed")
	}
}
