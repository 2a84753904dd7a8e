package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clubsync/events-backend/internal/model"
)

// EventRepository handles event data access.
type EventRepository struct {
	db DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `e.id, e.title, e.subtitle, e.description, e.date_time, e.poster,
	 e.gform_link, e.location, e.location_link, e.insta_link, e.created_by, e.created_at, a.username`

// Create inserts a new event owned by the given admin.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO events (title, subtitle, description, date_time, poster, gform_link, location, location_link, insta_link, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		e.Title, e.Subtitle, e.Description, e.DateTime.Time, e.Poster,
		e.GformLink, e.Location, e.LocationLink, e.InstaLink, e.CreatedByID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// ListAll returns every event, newest schedule first.
func (r *EventRepository) ListAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events e JOIN admins a ON e.created_by = a.id
		 ORDER BY e.date_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return scanEvents(rows)
}

// ListByOwner returns the events created by the named admin, oldest first.
// An unknown username yields an empty slice, not an error.
func (r *EventRepository) ListByOwner(ctx context.Context, username string) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events e JOIN admins a ON e.created_by = a.id
		 WHERE a.username = $1
		 ORDER BY e.id ASC`, username)
	if err != nil {
		return nil, fmt.Errorf("list events by owner: %w", err)
	}
	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]model.Event, error) {
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Subtitle, &e.Description, &e.DateTime.Time, &e.Poster,
			&e.GformLink, &e.Location, &e.LocationLink, &e.InstaLink, &e.CreatedByID,
			&e.CreatedAt, &e.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
