package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/levelupgamer/lu/internal/domain"
)

// AddToCart adds one unit of a product, refusing when the cart would exceed stock.
func (s *Store) AddToCart(productCode string) error {
	err := s.withTx(func(tx *sql.Tx) error {
		var stock int
		err := tx.QueryRow(`SELECT quantity FROM products WHERE code = ?`, productCode).Scan(&stock)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		if err != nil {
			return err
		}

		var inCart int
		err = tx.QueryRow(`SELECT quantity FROM cart_items WHERE product_code = ?`, productCode).Scan(&inCart)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if inCart+1 > stock {
			return &domain.StockError{ProductCode: productCode, Available: stock, Requested: inCart + 1}
		}

		_, err = tx.Exec(
			`INSERT INTO cart_items (product_code, quantity, added_at) VALUES (?, 1, ?)
			 ON CONFLICT(product_code) DO UPDATE SET quantity = quantity + 1`,
			productCode, formatTime(now()),
		)
		return err
	})
	if err != nil {
		return err
	}

	s.feed.Publish(TopicCart)
	return nil
}

// RemoveFromCart drops a product line from the cart.
func (s *Store) RemoveFromCart(productCode string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM cart_items WHERE product_code = ?`, productCode)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.feed.Publish(TopicCart)
	}
	return n > 0, nil
}

// ClearCart empties the cart.
func (s *Store) ClearCart() error {
	res, err := s.db.Exec(`DELETE FROM cart_items`)
	if err != nil {
		return err
	}
	s.publishIfChanged(res, TopicCart)
	return nil
}

// ListCart returns cart lines joined with their products, in insertion order.
func (s *Store) ListCart() ([]domain.CartLine, error) {
	rows, err := s.db.Query(
		`SELECT p.code, p.name, p.category, p.price, p.quantity, p.image, p.description, c.quantity
		 FROM cart_items c JOIN products p ON p.code = c.product_code
		 ORDER BY c.added_at ASC, c.rowid ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		p := &l.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Image, &p.Description, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// CartCodes returns the product codes currently in the cart.
func (s *Store) CartCodes() ([]string, error) {
	rows, err := s.db.Query(`SELECT product_code FROM cart_items ORDER BY added_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		out = append(out, code)
	}
	return out, rows.Err()
}

// WatchCart emits the cart codes now and after every cart change.
func (s *Store) WatchCart(ctx context.Context) <-chan []string {
	return watch(ctx, s, s.CartCodes, TopicCart)
}
