package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// EventListKey returns the cache key for the full event listing.
func (r *CacheKeyStruct) EventListKey() string {
	return "events:all"
}

// EventsByOwnerKey returns the cache key for events filtered by owner username.
func (r *CacheKeyStruct) EventsByOwnerKey(username string) string {
	return fmt.Sprintf("events:owner:%s", username)
}

// AnnouncementListKey returns the cache key for the full announcement listing.
func (r *CacheKeyStruct) AnnouncementListKey() string {
	return "announcements:all"
}

// AnnouncementsByOwnerKey returns the cache key for announcements filtered by owner username.
func (r *CacheKeyStruct) AnnouncementsByOwnerKey(username string) string {
	return fmt.Sprintf("announcements:owner:%s", username)
}

// CacheKey is the shared key builder instance.
var CacheKey = NewCacheKeyStruct()
