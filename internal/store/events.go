package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/levelupgamer/lu/internal/domain"
)

const eventColumns = `id, title, description, location, starts_at, created_at, updated_at`

// ListEvents returns every event ordered by start time, then ID.
func (s *Store) ListEvents() ([]domain.Event, error) {
	rows, err := s.db.Query(`SELECT ` + eventColumns + ` FROM events ORDER BY starts_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// WatchEvents emits the event list now and after every change.
func (s *Store) WatchEvents(ctx context.Context) <-chan []domain.Event {
	return watch(ctx, s, s.ListEvents, TopicEvents)
}

// GetEvent returns the event with id. Absence is reported through found.
func (s *Store) GetEvent(id string) (domain.Event, bool, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)

	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, false, nil
	}
	if err != nil {
		return domain.Event{}, false, err
	}
	return e, true, nil
}

// InsertEvent stores e. An empty ID is replaced with a new UUID and zero
// timestamps are set to now. The ID and the stored form of every timestamp
// (UTC, whole seconds) are written back to e.
func (s *Store) InsertEvent(e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	ts := now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = ts
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = ts
	}
	if e.StartsAt.IsZero() {
		e.StartsAt = ts
	}
	e.StartsAt = storedTime(e.StartsAt)
	e.CreatedAt = storedTime(e.CreatedAt)
	e.UpdatedAt = storedTime(e.UpdatedAt)

	_, err := s.db.Exec(
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		formatTime(e.StartsAt),
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return err
	}

	s.feed.Publish(TopicEvents)
	return nil
}

// UpdateEvent overwrites the stored fields of e. Updating a missing event is a no-op.
func (s *Store) UpdateEvent(e domain.Event) error {
	res, err := s.db.Exec(
		`UPDATE events
		 SET title = ?, description = ?, location = ?, starts_at = ?, updated_at = ?
		 WHERE id = ?`,
		e.Title,
		e.Description,
		e.Location,
		formatTime(e.StartsAt),
		formatTime(now()),
		e.ID,
	)
	if err != nil {
		return err
	}

	s.publishIfChanged(res, TopicEvents)
	return nil
}

// DeleteEvent removes e by ID. Deleting a missing event is a no-op.
func (s *Store) DeleteEvent(e domain.Event) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, e.ID)
	if err != nil {
		return err
	}

	s.publishIfChanged(res, TopicEvents)
	return nil
}

func (s *Store) publishIfChanged(res sql.Result, topics ...Topic) {
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return
	}
	s.feed.Publish(topics...)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e                         domain.Event
		startsAt, created, update string
	)

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &startsAt, &created, &update); err != nil {
		return domain.Event{}, err
	}

	var err error
	if e.StartsAt, err = parseTime(startsAt); err != nil {
		return domain.Event{}, err
	}
	if e.CreatedAt, err = parseTime(created); err != nil {
		return domain.Event{}, err
	}
	if e.UpdatedAt, err = parseTime(update); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}
