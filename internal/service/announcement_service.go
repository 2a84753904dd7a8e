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

// AnnouncementStore is the announcement persistence the service depends on.
type AnnouncementStore interface {
	Create(ctx context.Context, n *model.Announcement) error
	ListAll(ctx context.Context) ([]model.Announcement, error)
	ListByOwner(ctx context.Context, username string) ([]model.Announcement, error)
}

// AnnouncementService handles announcement creation and listing with the
// same optional Redis list cache as EventService.
type AnnouncementService struct {
	announcements AnnouncementStore
	rdb           *redis.Client
	cfg           *config.Config
	log           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcements AnnouncementStore, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		rdb:           rdb,
		cfg:           cfg,
		log:           log.With().Str("component", "announcement_service").Logger(),
	}
}

// Create stores an announcement owned by the creating admin and
// invalidates the affected list caches.
func (s *AnnouncementService) Create(ctx context.Context, ownerID int, ownerUsername string, req *model.CreateAnnouncementRequest) (*model.Announcement, error) {
	announcement := &model.Announcement{
		Description:   req.Description,
		Poster:        req.Poster,
		InstaLink:     req.InstaLink,
		GformLink:     req.GformLink,
		CreatedByID:   ownerID,
		OwnerUsername: ownerUsername,
	}

	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, ownerUsername)
	s.log.Info().Int("id", announcement.ID).Str("owner", ownerUsername).Msg("Announcement created")
	return announcement, nil
}

// ListAll returns every announcement, newest first. Never returns nil.
func (s *AnnouncementService) ListAll(ctx context.Context) ([]model.Announcement, error) {
	key := config.CacheKey.AnnouncementListKey()
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	announcements, err := s.announcements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}

	s.toCache(ctx, key, announcements)
	return announcements, nil
}

// ListByOwner returns the announcements owned by username; empty slice
// when the owner has none or does not exist.
func (s *AnnouncementService) ListByOwner(ctx context.Context, username string) ([]model.Announcement, error) {
	key := config.CacheKey.AnnouncementsByOwnerKey(username)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	announcements, err := s.announcements.ListByOwner(ctx, username)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}

	s.toCache(ctx, key, announcements)
	return announcements, nil
}

// WarmCache loads the full announcement listing into Redis.
func (s *AnnouncementService) WarmCache(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	announcements, err := s.announcements.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("warm announcement cache: %w", err)
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}
	s.toCache(ctx, config.CacheKey.AnnouncementListKey(), announcements)
	return nil
}

func (s *AnnouncementService) fromCache(ctx context.Context, key string) ([]model.Announcement, bool) {
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
	var announcements []model.Announcement
	if err := json.Unmarshal([]byte(raw), &announcements); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt")
		return nil, false
	}
	return announcements, true
}

func (s *AnnouncementService) toCache(ctx context.Context, key string, announcements []model.Announcement) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(announcements)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, s.cfg.CacheTTL).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}

func (s *AnnouncementService) invalidateCache(ctx context.Context, ownerUsername string) {
	if s.rdb == nil {
		return
	}
	keys := []string{
		config.CacheKey.AnnouncementListKey(),
		config.CacheKey.AnnouncementsByOwnerKey(ownerUsername),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Cache invalidation failed")
	}
}
