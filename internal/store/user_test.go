package store

import (
	"testing"

	"github.com/gtteam/shop/internal/database"
	"github.com/gtteam/shop/internal/model"
)

func setupUserTestDB(t *testing.T) *UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db)
}

func TestUserCreateGetSetPoints(t *testing.T) {
	us := setupUserTestDB(t)

	u, err := us.Create(model.User{ID: "88", Name: "Alfred Pennyworth", ActivityPoints: 4800})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.ActivityPoints != 4800 {
		t.Errorf("points = %d, want 4800", u.ActivityPoints)
	}

	if err := us.SetPoints("88", 4300); err != nil {
		t.Fatalf("set points: %v", err)
	}
	got, err := us.GetByID("88")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ActivityPoints != 4300 {
		t.Errorf("points = %d, want 4300", got.ActivityPoints)
	}

	missing, err := us.GetByID("nope")
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing user")
	}
}
