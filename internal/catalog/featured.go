package catalog

import (
	"math/rand/v2"

	"github.com/levelupgamer/lu/internal/domain"
)

// DefaultFeaturedCount is the size of the home screen sample.
const DefaultFeaturedCount = 4

// Featured returns a random sample of n products, or all of them in random
// order when there are fewer. Every call draws a new sample. A nil rng uses
// the global source. products is not modified.
func Featured(products []domain.Product, n int, rng *rand.Rand) []domain.Product {
	if n <= 0 || len(products) == 0 {
		return nil
	}

	shuffled := make([]domain.Product, len(products))
	copy(shuffled, products)

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
