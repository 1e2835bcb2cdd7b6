package domain

import (
	"context"
	"io"
)

// EventStore is the data-access boundary for events.
type EventStore interface {
	// ListEvents returns every event.
	ListEvents() ([]Event, error)

	// WatchEvents emits the full collection now and after every change until ctx is done.
	WatchEvents(ctx context.Context) <-chan []Event

	// GetEvent returns the event with the given ID; found is false when it does not exist.
	GetEvent(id string) (event Event, found bool, err error)

	// InsertEvent stores a new event, assigning an ID when empty.
	InsertEvent(event *Event) error

	// UpdateEvent overwrites the stored fields of an existing event.
	UpdateEvent(event Event) error

	// DeleteEvent removes the event by identity.
	DeleteEvent(event Event) error
}

// ProductStore provides catalog reads and stock maintenance.
type ProductStore interface {
	ListProducts() ([]Product, error)
	GetProduct(code string) (Product, bool, error)
	UpsertProducts(products []Product) error
	WatchProducts(ctx context.Context) <-chan []Product
}

// ReviewStore provides ratings.
type ReviewStore interface {
	AddReview(review *Review) error
	ListReviews(productCode string) ([]Review, error)

	// AverageRating returns nil when the product has no reviews.
	AverageRating(productCode string) (*float64, error)
	AverageRatings() (map[string]float64, error)
	WatchAverageRating(ctx context.Context, productCode string) <-chan *float64
	WatchAverageRatings(ctx context.Context) <-chan map[string]float64
}

// CartStore provides the shopping cart.
type CartStore interface {
	AddToCart(productCode string) error
	RemoveFromCart(productCode string) (bool, error)
	ClearCart() error
	ListCart() ([]CartLine, error)
	CartCodes() ([]string, error)
	WatchCart(ctx context.Context) <-chan []string
}

// OrderStore provides checkout and order tracking.
type OrderStore interface {
	Checkout() (Order, error)
	ListOrders() ([]Order, error)
	GetOrder(id string) (Order, bool, error)
	SetOrderStatus(id string, status OrderStatus) (bool, error)
}

// Store aggregates every storage capability of the application.
type Store interface {
	EventStore
	ProductStore
	ReviewStore
	CartStore
	OrderStore

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// Application holds the wired dependencies shared by every command.
type Application struct {
	Store  Store
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler
}
