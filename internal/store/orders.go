package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/levelupgamer/lu/internal/domain"
)

// Checkout turns the cart into an order with status Processing.
// Stock is decremented and the cart cleared in the same transaction.
func (s *Store) Checkout() (domain.Order, error) {
	var order domain.Order

	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(
			`SELECT p.code, p.name, p.price, p.quantity, c.quantity
			 FROM cart_items c JOIN products p ON p.code = c.product_code
			 ORDER BY c.added_at ASC, c.rowid ASC`,
		)
		if err != nil {
			return err
		}

		type line struct {
			item  domain.OrderItem
			stock int
		}
		var lines []line
		for rows.Next() {
			var l line
			if err := rows.Scan(&l.item.ProductCode, &l.item.Name, &l.item.Price, &l.stock, &l.item.Quantity); err != nil {
				_ = rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return err
		}
		_ = rows.Close()

		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		ts := now()
		order = domain.Order{
			ID:        uuid.NewString(),
			Status:    domain.OrderProcessing,
			CreatedAt: ts,
			UpdatedAt: ts,
		}

		for _, l := range lines {
			if l.item.Quantity > l.stock {
				return &domain.StockError{ProductCode: l.item.ProductCode, Available: l.stock, Requested: l.item.Quantity}
			}
			order.Items = append(order.Items, l.item)
			order.Total += l.item.Price * int64(l.item.Quantity)
		}

		if _, err := tx.Exec(
			`INSERT INTO orders (id, status_id, total, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			order.ID, int(order.Status), order.Total, formatTime(ts), formatTime(ts),
		); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range order.Items {
			if _, err := tx.Exec(
				`INSERT INTO order_items (order_id, product_code, name, price, quantity) VALUES (?, ?, ?, ?, ?)`,
				order.ID, item.ProductCode, item.Name, item.Price, item.Quantity,
			); err != nil {
				return fmt.Errorf("insert order item %s: %w", item.ProductCode, err)
			}

			if _, err := tx.Exec(
				`UPDATE products SET quantity = quantity - ? WHERE code = ?`,
				item.Quantity, item.ProductCode,
			); err != nil {
				return fmt.Errorf("decrement stock %s: %w", item.ProductCode, err)
			}
		}

		if _, err := tx.Exec(`DELETE FROM cart_items`); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.feed.Publish(TopicOrders, TopicProducts, TopicCart)
	return order, nil
}

// ListOrders returns every order, newest first, without items.
func (s *Store) ListOrders() ([]domain.Order, error) {
	rows, err := s.db.Query(
		`SELECT id, status_id, total, created_at, updated_at FROM orders ORDER BY created_at DESC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetOrder returns the order with id including its items.
func (s *Store) GetOrder(id string) (domain.Order, bool, error) {
	o, err := scanOrder(s.db.QueryRow(
		`SELECT id, status_id, total, created_at, updated_at FROM orders WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, false, nil
	}
	if err != nil {
		return domain.Order{}, false, err
	}

	rows, err := s.db.Query(
		`SELECT product_code, name, price, quantity FROM order_items WHERE order_id = ? ORDER BY rowid ASC`, id,
	)
	if err != nil {
		return domain.Order{}, false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductCode, &item.Name, &item.Price, &item.Quantity); err != nil {
			return domain.Order{}, false, err
		}
		o.Items = append(o.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.Order{}, false, err
	}

	return o, true, nil
}

// SetOrderStatus assigns status to an order. Any status may follow any other.
func (s *Store) SetOrderStatus(id string, status domain.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("invalid order status %d", int(status))
	}

	res, err := s.db.Exec(
		`UPDATE orders SET status_id = ?, updated_at = ? WHERE id = ?`,
		int(status), formatTime(now()), id,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.feed.Publish(TopicOrders)
	}
	return n > 0, nil
}

func scanOrder(row scanner) (domain.Order, error) {
	var (
		o                domain.Order
		statusID         int
		created, updated string
	)
	if err := row.Scan(&o.ID, &statusID, &o.Total, &created, &updated); err != nil {
		return domain.Order{}, err
	}

	o.Status = domain.OrderStatus(statusID)

	var err error
	if o.CreatedAt, err = parseTime(created); err != nil {
		return domain.Order{}, err
	}
	if o.UpdatedAt, err = parseTime(updated); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
