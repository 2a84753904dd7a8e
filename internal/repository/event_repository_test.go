package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"

	"github.com/clubsync/events-backend/internal/model"
)

var eventRowColumns = []string{
	"id", "title", "subtitle", "description", "date_time", "poster",
	"gform_link", "location", "location_link", "insta_link", "created_by",
	"created_at", "username",
}

func TestEventRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewEventRepository(mock)
	when := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO events`)).
		WithArgs("Intro CTF", "Beginner friendly", "Capture the flag night", when, "aGVsbG8=",
			"https://forms.example.com/ctf", "Lab 3", "https://maps.example.com/lab3", "https://instagram.com/club", 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))

	event := &model.Event{
		Title:        "Intro CTF",
		Subtitle:     "Beginner friendly",
		Description:  "Capture the flag night",
		DateTime:     model.NewDateTime(when),
		Poster:       "aGVsbG8=",
		GformLink:    "https://forms.example.com/ctf",
		Location:     "Lab 3",
		LocationLink: "https://maps.example.com/lab3",
		InstaLink:    "https://instagram.com/club",
		CreatedByID:  3,
	}
	if err := repo.Create(context.Background(), event); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if event.ID != 11 {
		t.Fatalf("id = %d, want 11", event.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventRepository_ListAll(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewEventRepository(mock)
	later := time.Date(2025, 2, 1, 18, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(eventRowColumns).
		AddRow(2, "Finals", "", "desc2", later, "p2", "g2", "", "l2", "", 3, time.Now(), "padma").
		AddRow(1, "Intro", "", "desc1", earlier, "p1", "g1", "", "l1", "", 3, time.Now(), "padma")

	mock.ExpectQuery(`SELECT .+ FROM events e JOIN admins a ON e\.created_by = a\.id ORDER BY e\.date_time DESC`).
		WillReturnRows(rows)

	events, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Title != "Finals" || events[1].Title != "Intro" {
		t.Fatalf("unexpected order: %q, %q", events[0].Title, events[1].Title)
	}
	if events[0].OwnerUsername != "padma" {
		t.Fatalf("owner = %q, want padma", events[0].OwnerUsername)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEventRepository_ListByOwner_Empty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewEventRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM events e JOIN admins a ON e\.created_by = a\.id WHERE a\.username = \$1`).
		WithArgs("stranger").
		WillReturnRows(pgxmock.NewRows(eventRowColumns))

	events, err := repo.ListByOwner(context.Background(), "stranger")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("len = %d, want 0", len(events))
	}
}

func TestAnnouncementRepository_ListAll(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewAnnouncementRepository(mock)

	rows := pgxmock.NewRows([]string{
		"id", "description", "poster", "insta_link", "gform_link", "created_by", "created_at", "username",
	}).
		AddRow(5, "Second notice", "p2", "", "", 3, time.Now(), "padma").
		AddRow(4, "First notice", "p1", "", "", 3, time.Now(), "padma")

	mock.ExpectQuery(`SELECT .+ FROM announcements n JOIN admins a ON n\.created_by = a\.id ORDER BY n\.id DESC`).
		WillReturnRows(rows)

	announcements, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(announcements) != 2 {
		t.Fatalf("len = %d, want 2", len(announcements))
	}
	if announcements[0].ID != 5 {
		t.Fatalf("first id = %d, want 5 (newest first)", announcements[0].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
