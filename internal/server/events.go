package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/domain"
)

// eventRequest is the body of POST and PUT /events. Pointer fields left
// out of a PUT keep their stored value.
type eventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
}

func (r eventRequest) apply(e *domain.Event) {
	if r.Title != nil {
		e.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Location != nil {
		e.Location = *r.Location
	}
	if r.StartsAt != nil {
		e.StartsAt = *r.StartsAt
	}
}

func (s *Server) listEvents(c *gin.Context) {
	events, err := s.store.ListEvents()
	if err != nil {
		respondError(c, err)
		return
	}
	if events == nil {
		events = []domain.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) getEvent(c *gin.Context) {
	id := c.Param("id")
	e, found, err := s.store.GetEvent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "event", id)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) createEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}

	var e domain.Event
	req.apply(&e)
	if e.Title == "" {
		badRequest(c, "title is required")
		return
	}

	if err := s.store.InsertEvent(&e); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) updateEvent(c *gin.Context) {
	id := c.Param("id")

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json")
		return
	}

	e, found, err := s.store.GetEvent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "event", id)
		return
	}

	req.apply(&e)
	if e.Title == "" {
		badRequest(c, "title cannot be empty")
		return
	}

	if err := s.store.UpdateEvent(e); err != nil {
		respondError(c, err)
		return
	}

	updated, _, err := s.store.GetEvent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteEvent(c *gin.Context) {
	id := c.Param("id")
	e, found, err := s.store.GetEvent(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "event", id)
		return
	}

	if err := s.store.DeleteEvent(e); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
