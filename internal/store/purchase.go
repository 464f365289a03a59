package store

import (
	"database/sql"
	"fmt"

	"github.com/gtteam/shop/internal/model"
)

type PurchaseStore struct {
	db *sql.DB
}

func NewPurchaseStore(db *sql.DB) *PurchaseStore {
	return &PurchaseStore{db: db}
}

const purchaseCols = `transaction_id, reward_id, reward_name, points_spent, quantity, purchased_at, status, awb_number`

func scanPurchase(scanner interface{ Scan(...any) error }) (*model.PurchasedItem, error) {
	var p model.PurchasedItem
	var awb sql.NullString

	err := scanner.Scan(&p.ID, &p.RewardID, &p.RewardName, &p.PointsSpent, &p.Quantity, &p.PurchaseDate, &p.Status, &awb)
	if err != nil {
		return nil, err
	}

	if awb.Valid {
		p.AWBNumber = awb.String
	}
	return &p, nil
}

// Record stores all lines of a completed checkout in one transaction.
func (s *PurchaseStore) Record(items []model.PurchasedItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		var awb any
		if item.AWBNumber != "" {
			awb = item.AWBNumber
		}
		_, err := tx.Exec(
			`INSERT INTO purchases (transaction_id, reward_id, reward_name, points_spent, quantity, purchased_at, status, awb_number)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, item.RewardID, item.RewardName, item.PointsSpent, item.Quantity, item.PurchaseDate, item.Status, awb,
		)
		if err != nil {
			return fmt.Errorf("insert purchase: %w", err)
		}
	}

	return tx.Commit()
}

// List returns purchases newest first.
func (s *PurchaseStore) List() ([]model.PurchasedItem, error) {
	rows, err := s.db.Query(`SELECT ` + purchaseCols + ` FROM purchases ORDER BY purchased_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []model.PurchasedItem
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, *p)
	}
	return purchases, rows.Err()
}
