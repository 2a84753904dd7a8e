package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clubsync/events-backend/internal/config"
	"github.com/clubsync/events-backend/internal/model"
)

// EventStore is the event persistence the service depends on.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	ListAll(ctx context.Context) ([]model.Event, error)
	ListByOwner(ctx context.Context, username string) ([]model.Event, error)
}

// EventService handles event creation and listing. List results are cached
// in Redis because they carry inline base64 posters and dominate traffic.
// The cache is optional: a nil client disables it.
type EventService struct {
	events EventStore
	rdb    *redis.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(events EventStore, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *EventService {
	return &EventService{
		events: events,
		rdb:    rdb,
		cfg:    cfg,
		log:    log.With().Str("component", "event_service").Logger(),
	}
}

// Create stores an event owned by the creating admin and invalidates the
// affected list caches.
func (s *EventService) Create(ctx context.Context, ownerID int, ownerUsername string, req *model.CreateEventRequest) (*model.Event, error) {
	event := &model.Event{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		DateTime:      req.DateTime,
		Poster:        req.Poster,
		GformLink:     req.GformLink,
		Location:      req.Location,
		LocationLink:  req.LocationLink,
		InstaLink:     req.InstaLink,
		CreatedByID:   ownerID,
		OwnerUsername: ownerUsername,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, ownerUsername)
	s.log.Info().Int("id", event.ID).Str("owner", ownerUsername).Msg("Event created")
	return event, nil
}

// ListAll returns every event, newest schedule first. Never returns nil.
func (s *EventService) ListAll(ctx context.Context) ([]model.Event, error) {
	key := config.CacheKey.EventListKey()
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}

	s.toCache(ctx, key, events)
	return events, nil
}

// ListByOwner returns the events owned by username; empty slice when the
// owner has none or does not exist.
func (s *EventService) ListByOwner(ctx context.Context, username string) ([]model.Event, error) {
	key := config.CacheKey.EventsByOwnerKey(username)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	events, err := s.events.ListByOwner(ctx, username)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}

	s.toCache(ctx, key, events)
	return events, nil
}

// WarmCache loads the full event listing into Redis. Called at startup
// before traffic arrives and periodically by the cache-warm worker.
func (s *EventService) WarmCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("warm event cache: %w", err)
	}
	if events == nil {
		events = []model.Event{}
	}
	s.toCache(ctx, config.CacheKey.EventListKey(), events)
	return nil
}

func (s *EventService) fromCache(ctx context.Context, key string) ([]model.Event, bool) {
	if s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		}
		return nil, false
	}
	var events []model.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt")
		return nil, false
	}
	return events, true
}

func (s *EventService) toCache(ctx context.Context, key string, events []model.Event) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cfg.CacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (s *EventService) invalidateCache(ctx context.Context, ownerUsername string) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		config.CacheKey.EventListKey(),
		config.CacheKey.EventsByOwnerKey(ownerUsername),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
