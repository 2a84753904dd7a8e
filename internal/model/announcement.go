package model

import "time"

// Announcement represents a standalone notice published by an admin.
// Same ownership model as Event, without a schedule.
type Announcement struct {
	ID            int    `json:"id"`
	Description   string `json:"description"`
	Poster        string `json:"poster"`
	InstaLink     string `json:"instaLink,omitempty"`
	GformLink     string `json:"gformLink,omitempty"`
	OwnerUsername string `json:"ownerUsername"`

	CreatedByID int       `json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// CreateAnnouncementRequest is the payload for creating an announcement.
type CreateAnnouncementRequest struct {
	Description string `json:"description" binding:"required"`
	Poster      string `json:"poster" binding:"required"`
	InstaLink   string `json:"instaLink" binding:"omitempty,url"`
	GformLink   string `json:"gformLink" binding:"omitempty,url"`
}
