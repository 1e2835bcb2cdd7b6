package store

import (
	"context"
	"database/sql"

	"github.com/levelupgamer/lu/internal/domain"
)

// AddReview stores r and sets its ID and CreatedAt. Ratings are not validated here.
func (s *Store) AddReview(r *domain.Review) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now()
	}

	res, err := s.db.Exec(
		`INSERT INTO reviews (product_code, rating, comment, created_at) VALUES (?, ?, ?, ?)`,
		r.ProductCode, r.Rating, r.Comment, formatTime(r.CreatedAt),
	)
	if err != nil {
		return err
	}

	if id, err := res.LastInsertId(); err == nil {
		r.ID = id
	}

	s.feed.Publish(TopicReviews)
	return nil
}

// ListReviews returns the reviews of a product, newest first.
func (s *Store) ListReviews(productCode string) ([]domain.Review, error) {
	rows, err := s.db.Query(
		`SELECT id, product_code, rating, comment, created_at
		 FROM reviews WHERE product_code = ?
		 ORDER BY created_at DESC, id DESC`,
		productCode,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Review
	for rows.Next() {
		var (
			r  domain.Review
			ts string
		)
		if err := rows.Scan(&r.ID, &r.ProductCode, &r.Rating, &r.Comment, &ts); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = parseTime(ts); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AverageRating returns the mean rating of a product, or nil without reviews.
func (s *Store) AverageRating(productCode string) (*float64, error) {
	var avg sql.NullFloat64
	err := s.db.QueryRow(`SELECT AVG(rating) FROM reviews WHERE product_code = ?`, productCode).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

// AverageRatings returns the mean rating of every reviewed product.
func (s *Store) AverageRatings() (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT product_code, AVG(rating) FROM reviews GROUP BY product_code`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]float64)
	for rows.Next() {
		var (
			code string
			avg  float64
		)
		if err := rows.Scan(&code, &avg); err != nil {
			return nil, err
		}
		out[code] = avg
	}
	return out, rows.Err()
}

// WatchAverageRating emits the average rating of a product now and after review changes.
func (s *Store) WatchAverageRating(ctx context.Context, productCode string) <-chan *float64 {
	return watch(ctx, s, func() (*float64, error) {
		return s.AverageRating(productCode)
	}, TopicReviews)
}

// WatchAverageRatings emits every product's average rating now and after review changes.
func (s *Store) WatchAverageRatings(ctx context.Context) <-chan map[string]float64 {
	return watch(ctx, s, s.AverageRatings, TopicReviews)
}
