package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clubsync/events-backend/internal/model"
)

// AnnouncementRepository handles announcement data access.
type AnnouncementRepository struct {
	db DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(db DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementColumns = `n.id, n.description, n.poster, n.insta_link, n.gform_link, n.created_by, n.created_at, a.username`

// Create inserts a new announcement owned by the given admin.
func (r *AnnouncementRepository) Create(ctx context.Context, n *model.Announcement) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO announcements (description, poster, insta_link, gform_link, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		n.Description, n.Poster, n.InstaLink, n.GformLink, n.CreatedByID,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// ListAll returns every announcement, newest first.
func (r *AnnouncementRepository) ListAll(ctx context.Context) ([]model.Announcement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+announcementColumns+`
		 FROM announcements n JOIN admins a ON n.created_by = a.id
		 ORDER BY n.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return scanAnnouncements(rows)
}

// ListByOwner returns the announcements created by the named admin.
// An unknown username yields an empty slice, not an error.
func (r *AnnouncementRepository) ListByOwner(ctx context.Context, username string) ([]model.Announcement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+announcementColumns+`
		 FROM announcements n JOIN admins a ON n.created_by = a.id
		 WHERE a.username = $1
		 ORDER BY n.id ASC`, username)
	if err != nil {
		return nil, fmt.Errorf("list announcements by owner: %w", err)
	}
	return scanAnnouncements(rows)
}

func scanAnnouncements(rows pgx.Rows) ([]model.Announcement, error) {
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var n model.Announcement
		if err := rows.Scan(
			&n.ID, &n.Description, &n.Poster, &n.InstaLink, &n.GformLink,
			&n.CreatedByID, &n.CreatedAt, &n.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, n)
	}
	return announcements, rows.Err()
}
