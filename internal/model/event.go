package model

import "time"

// Event represents a club event published by an admin. The poster is an
// opaque base64-encoded image payload carried inline in the JSON body.
type Event struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Description   string   `json:"description"`
	DateTime      DateTime `json:"dateTime"`
	Poster        string   `json:"poster"`
	GformLink     string   `json:"gformLink"`
	Location      string   `json:"location,omitempty"`
	LocationLink  string   `json:"locationLink"`
	InstaLink     string   `json:"instaLink,omitempty"`
	OwnerUsername string   `json:"ownerUsername"`

	CreatedByID int       `json:"-"`
	CreatedAt   time.Time `json:"-"`
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title        string   `json:"title" binding:"required"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description" binding:"required"`
	DateTime     DateTime `json:"dateTime" binding:"required"`
	Poster       string   `json:"poster" binding:"required"`
	GformLink    string   `json:"gformLink" binding:"required,url"`
	Location     string   `json:"location"`
	LocationLink string   `json:"locationLink" binding:"required,url"`
	InstaLink    string   `json:"instaLink" binding:"omitempty,url"`
}
