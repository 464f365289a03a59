package store

import (
	"database/sql"
	"fmt"

	"github.com/gtteam/shop/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(u model.User) (*model.User, error) {
	_, err := s.db.Exec(
		`INSERT INTO users (id, name, avatar, activity_points) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, u.Avatar, u.ActivityPoints,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return s.GetByID(u.ID)
}

func (s *UserStore) GetByID(id string) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(
		`SELECT id, name, avatar, activity_points FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Avatar, &u.ActivityPoints)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (s *UserStore) SetPoints(id string, points int) error {
	_, err := s.db.Exec(`UPDATE users SET activity_points = ? WHERE id = ?`, points, id)
	if err != nil {
		return fmt.Errorf("set points: %w", err)
	}
	return nil
}
