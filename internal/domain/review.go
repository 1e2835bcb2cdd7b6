package domain

import "time"

// Review ratings are whole stars.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a customer rating for a product.
type Review struct {
	ID          int64     `json:"id"`
	ProductCode string    `json:"product_code"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
