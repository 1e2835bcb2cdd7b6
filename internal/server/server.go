// Package server exposes the storefront over HTTP: catalog reads, events
// CRUD, cart and orders, live query streams and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/levelupgamer/lu/internal/catalog"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/log"
)

// Server wires the HTTP routes to a store.
type Server struct {
	engine  *gin.Engine
	store   domain.Store
	metrics *Metrics

	featuredCount int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Server.
type Option func(*Server)

// WithFeaturedCount sets the size of the /featured sample.
func WithFeaturedCount(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.featuredCount = n
		}
	}
}

// WithRand sets the random source of the /featured sample.
func WithRand(rng *rand.Rand) Option {
	return func(s *Server) { s.rng = rng }
}

// NewServer builds the gin engine. Access logs go to logOut; nil discards them.
func NewServer(st domain.Store, logOut io.Writer, opts ...Option) *Server {
	if logOut == nil {
		logOut = io.Discard
	}

	s := &Server{
		store:         st,
		metrics:       NewMetrics(),
		featuredCount: catalog.DefaultFeaturedCount,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(logOut), gin.RecoveryWithWriter(logOut), s.metrics.Middleware())
	s.engine = r
	s.registerRoutes()
	return s
}

// Engine returns the underlying handler.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) registerRoutes() {
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/products", s.listProducts)
		v1.GET("/products/:code", s.getProduct)
		v1.GET("/products/:code/rating/stream", s.streamRating)
		v1.GET("/categories", s.listCategories)
		v1.GET("/featured", s.featured)

		events := v1.Group("/events")
		events.GET("", s.listEvents)
		events.POST("", s.createEvent)
		events.GET("/stream", s.streamEvents)
		events.GET("/:id", s.getEvent)
		events.PUT("/:id", s.updateEvent)
		events.DELETE("/:id", s.deleteEvent)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("", s.addToCart)
		cart.DELETE("", s.clearCart)
		cart.DELETE("/:code", s.removeFromCart)

		orders := v1.Group("/orders")
		orders.GET("", s.listOrders)
		orders.POST("", s.checkout)
		orders.GET("/:id", s.getOrder)
		orders.PUT("/:id/status", s.setOrderStatus)
	}
}

// Run serves on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server: listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info("server: shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// statusFor maps store errors to HTTP status codes.
func statusFor(err error) int {
	var stockErr *domain.StockError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusConflict
	case errors.As(err, &stockErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("server: %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, what, id string) {
	c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s %q not found", what, id)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
