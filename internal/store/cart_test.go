package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/levelupgamer/lu/internal/domain"
)

func TestStore_AddToCart(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s,
		domain.Product{Code: "A", Name: "Catan", Category: "Board", Price: 29990, Quantity: 2},
		domain.Product{Code: "B", Name: "Mouse", Category: "Mouse", Price: 49990, Quantity: 5},
	)

	require.NoError(t, s.AddToCart("A"))
	require.NoError(t, s.AddToCart("B"))
	require.NoError(t, s.AddToCart("A"))

	lines, err := s.ListCart()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "A", lines[0].Product.Code)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, int64(59980), lines[0].Subtotal())

	codes, err := s.CartCodes()
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, codes)
}

func TestStore_AddToCart_Refusals(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s,
		domain.Product{Code: "A", Name: "Headset", Category: "Audio", Price: 1, Quantity: 0},
		domain.Product{Code: "B", Name: "Chair", Category: "Chairs", Price: 1, Quantity: 1},
	)

	err := s.AddToCart("A")
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	require.Equal(t, 0, stockErr.Available)

	require.NoError(t, s.AddToCart("B"))
	require.True(t, errors.As(s.AddToCart("B"), &stockErr))

	require.ErrorIs(t, s.AddToCart("missing"), domain.ErrProductNotFound)
}

func TestStore_RemoveAndClearCart(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s,
		domain.Product{Code: "A", Name: "a", Category: "c", Price: 1, Quantity: 3},
		domain.Product{Code: "B", Name: "b", Category: "c", Price: 1, Quantity: 3},
	)
	require.NoError(t, s.AddToCart("A"))
	require.NoError(t, s.AddToCart("B"))

	removed, err := s.RemoveFromCart("A")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.RemoveFromCart("A")
	require.NoError(t, err)
	require.False(t, removed)

	require.NoError(t, s.ClearCart())
	codes, err := s.CartCodes()
	require.NoError(t, err)
	require.Empty(t, codes)
}

func TestStore_WatchCart(t *testing.T) {
	s := newTestStore(t)
	seedProducts(t, s, domain.Product{Code: "A", Name: "a", Category: "c", Price: 1, Quantity: 3})

	ch := s.WatchCart(t.Context())
	require.Empty(t, receive(t, ch))

	require.NoError(t, s.AddToCart("A"))
	require.Equal(t, []string{"A"}, receive(t, ch))
}
