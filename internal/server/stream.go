package server

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/domain"
)

// streamEvents pushes the full event list as a server-sent event now and
// after every change, until the client goes away.
func (s *Server) streamEvents(c *gin.Context) {
	done := s.metrics.streamOpened("events")
	defer done()

	updates := s.store.WatchEvents(c.Request.Context())
	c.Stream(func(w io.Writer) bool {
		events, ok := <-updates
		if !ok {
			return false
		}
		if events == nil {
			events = []domain.Event{}
		}
		c.SSEvent("events", events)
		return true
	})
}

type ratingEvent struct {
	Code    string   `json:"code"`
	Average *float64 `json:"average"`
}

// streamRating pushes the average rating of a product, null while unrated.
func (s *Server) streamRating(c *gin.Context) {
	code := c.Param("code")
	_, found, err := s.store.GetProduct(code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "product", code)
		return
	}

	done := s.metrics.streamOpened("rating")
	defer done()

	updates := s.store.WatchAverageRating(c.Request.Context(), code)
	c.Stream(func(w io.Writer) bool {
		avg, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("rating", ratingEvent{Code: code, Average: avg})
		return true
	})
}
