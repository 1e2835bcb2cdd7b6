package domain

import "time"

// Event is a store event (launches, tournaments, meetups) keyed by a string ID.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Equal reports whether e and o hold the same fields.
func (e Event) Equal(o Event) bool {
	return e.ID == o.ID &&
		e.Title == o.Title &&
		e.Description == o.Description &&
		e.Location == o.Location &&
		e.StartsAt.Equal(o.StartsAt) &&
		e.CreatedAt.Equal(o.CreatedAt) &&
		e.UpdatedAt.Equal(o.UpdatedAt)
}
