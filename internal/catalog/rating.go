package catalog

import (
	"math"
	"strings"
)

// DefaultMaxStars is the number of stars in a rating bar.
const DefaultMaxStars = 5

// Star glyphs.
const (
	StarFilled   = "★"
	StarOutlined = "☆"
)

// FilledStars returns floor(rating) clamped to [0, maxStars].
// A nil, NaN or negative rating yields 0.
func FilledStars(rating *float64, maxStars int) int {
	if rating == nil || maxStars <= 0 {
		return 0
	}

	r := *rating
	if math.IsNaN(r) || r <= 0 {
		return 0
	}

	filled := math.Floor(r)
	if filled > float64(maxStars) {
		return maxStars
	}
	return int(filled)
}

// RatingBar renders maxStars stars, filled up to FilledStars(rating, maxStars).
func RatingBar(rating *float64, maxStars int) string {
	return StyledRatingBar(rating, maxStars, nil, nil)
}

// StyledRatingBar is RatingBar with optional styling for each run of glyphs.
func StyledRatingBar(rating *float64, maxStars int, filledStyle, outlinedStyle func(string) string) string {
	if maxStars <= 0 {
		return ""
	}

	filled := FilledStars(rating, maxStars)
	on := strings.Repeat(StarFilled, filled)
	off := strings.Repeat(StarOutlined, maxStars-filled)

	if filledStyle != nil && on != "" {
		on = filledStyle(on)
	}
	if outlinedStyle != nil && off != "" {
		off = outlinedStyle(off)
	}
	return on + off
}

// Rating returns a pointer to r, for call sites holding plain averages.
func Rating(r float64) *float64 {
	return &r
}
