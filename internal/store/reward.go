package store

import (
	"database/sql"
	"fmt"

	"github.com/gtteam/shop/internal/model"
)

type RewardStore struct {
	db *sql.DB
}

func NewRewardStore(db *sql.DB) *RewardStore {
	return &RewardStore{db: db}
}

func scanReward(scanner interface{ Scan(...any) error }) (*model.Reward, error) {
	var r model.Reward
	var inStock, physical int

	err := scanner.Scan(&r.ID, &r.Name, &r.Description, &r.FullDescription, &r.Price,
		&r.Image, &r.Category, &inStock, &r.StockCount, &physical, &r.CreatedAt)
	if err != nil {
		return nil, err
	}

	r.InStock = inStock != 0
	r.Physical = physical != 0
	return &r, nil
}

const rewardCols = `id, name, description, full_description, price, image, category, in_stock, stock_count, physical, created_at`

func (s *RewardStore) Create(r model.Reward) (*model.Reward, error) {
	var inStock, physical int
	if r.InStock {
		inStock = 1
	}
	if r.Physical {
		physical = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO rewards (id, name, description, full_description, price, image, category, in_stock, stock_count, physical)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Description, r.FullDescription, r.Price, r.Image, r.Category, inStock, r.StockCount, physical,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reward: %w", err)
	}
	return s.GetByID(r.ID)
}

func (s *RewardStore) GetByID(id string) (*model.Reward, error) {
	row := s.db.QueryRow(`SELECT `+rewardCols+` FROM rewards WHERE id = ?`, id)
	r, err := scanReward(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reward: %w", err)
	}
	return r, nil
}

// List returns the whole catalog ordered by id.
func (s *RewardStore) List() ([]model.Reward, error) {
	rows, err := s.db.Query(`SELECT ` + rewardCols + ` FROM rewards ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []model.Reward
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, *r)
	}
	return rewards, rows.Err()
}

// Count returns the number of catalog entries.
func (s *RewardStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM rewards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count rewards: %w", err)
	}
	return n, nil
}

// DecrementStock reduces stock by qty, clamping at zero, and flips
// in_stock off when the remaining stock hits zero.
func (s *RewardStore) DecrementStock(id string, qty int) error {
	_, err := s.db.Exec(
		`UPDATE rewards
		 SET stock_count = MAX(stock_count - ?, 0),
		     in_stock = CASE WHEN stock_count - ? > 0 THEN 1 ELSE 0 END
		 WHERE id = ?`,
		qty, qty, id,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}
