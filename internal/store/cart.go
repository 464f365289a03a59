package store

import (
	"database/sql"
	"fmt"

	"github.com/gtteam/shop/internal/model"
)

type CartStore struct {
	db *sql.DB
}

func NewCartStore(db *sql.DB) *CartStore {
	return &CartStore{db: db}
}

func scanCartLine(scanner interface{ Scan(...any) error }) (*model.CartLine, error) {
	var l model.CartLine
	err := scanner.Scan(&l.RewardID, &l.Name, &l.Price, &l.Quantity, &l.Image)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

const cartCols = `reward_id, name, price, quantity, image`

func (s *CartStore) Get(rewardID string) (*model.CartLine, error) {
	row := s.db.QueryRow(`SELECT `+cartCols+` FROM cart_items WHERE reward_id = ?`, rewardID)
	l, err := scanCartLine(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return l, nil
}

// List returns cart lines in insertion order.
func (s *CartStore) List() ([]model.CartLine, error) {
	rows, err := s.db.Query(`SELECT ` + cartCols + ` FROM cart_items ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()

	var lines []model.CartLine
	for rows.Next() {
		l, err := scanCartLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, *l)
	}
	return lines, rows.Err()
}

// Add inserts a new line or adds the quantity delta to an existing one.
// The price snapshot of an existing line is preserved.
func (s *CartStore) Add(line model.CartLine) error {
	_, err := s.db.Exec(
		`INSERT INTO cart_items (reward_id, name, price, quantity, image)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(reward_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		line.RewardID, line.Name, line.Price, line.Quantity, line.Image,
	)
	if err != nil {
		return fmt.Errorf("add cart line: %w", err)
	}
	return nil
}

// Delete removes a line. Returns false when no line matched.
func (s *CartStore) Delete(rewardID string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM cart_items WHERE reward_id = ?`, rewardID)
	if err != nil {
		return false, fmt.Errorf("delete cart line: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func (s *CartStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM cart_items`)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Total computes the cart's point total server-side.
func (s *CartStore) Total() (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(`SELECT COALESCE(SUM(price * quantity), 0) FROM cart_items`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("cart total: %w", err)
	}
	return int(total.Int64), nil
}
