package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/levelupgamer/lu/internal/domain"
)

const productColumns = `code, name, category, price, quantity, image, description`

// ListProducts returns the catalog ordered by name.
func (s *Store) ListProducts() ([]domain.Product, error) {
	return queryProducts(s.db, `SELECT `+productColumns+` FROM products ORDER BY name ASC, code ASC`)
}

// WatchProducts emits the catalog now and after every product change.
func (s *Store) WatchProducts(ctx context.Context) <-chan []domain.Product {
	return watch(ctx, s, s.ListProducts, TopicProducts)
}

// GetProduct returns the product with code.
func (s *Store) GetProduct(code string) (domain.Product, bool, error) {
	p, err := scanProduct(s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE code = ?`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

// UpsertProducts inserts or replaces products by code in one transaction.
func (s *Store) UpsertProducts(products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	err := s.withTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(
			`INSERT INTO products (` + productColumns + `)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(code) DO UPDATE SET
				name = excluded.name,
				category = excluded.category,
				price = excluded.price,
				quantity = excluded.quantity,
				image = excluded.image,
				description = excluded.description`,
		)
		if err != nil {
			return err
		}
		defer func() { _ = stmt.Close() }()

		for _, p := range products {
			if _, err := stmt.Exec(p.Code, p.Name, p.Category, p.Price, p.Quantity, p.Image, p.Description); err != nil {
				return fmt.Errorf("upsert %s: %w", p.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.feed.Publish(TopicProducts)
	return nil
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func queryProducts(q querier, query string, args ...any) ([]domain.Product, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.Code, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Image, &p.Description)
	return p, err
}
