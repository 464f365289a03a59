package store

import (
	"testing"

	"github.com/gtteam/shop/internal/database"
	"github.com/gtteam/shop/internal/model"
)

func setupCartTestDB(t *testing.T) (*CartStore, *RewardStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	rs := NewRewardStore(db)
	for _, r := range []model.Reward{
		{ID: "1", Name: "Tricou GenTech", Price: 500, InStock: true, StockCount: 5},
		{ID: "39", Name: "Voucher eMAG 150", Price: 1500, InStock: true, StockCount: 5},
	} {
		if _, err := rs.Create(r); err != nil {
			t.Fatalf("create reward %s: %v", r.ID, err)
		}
	}
	return NewCartStore(db), rs
}

func TestCartAddAndGet(t *testing.T) {
	cs, _ := setupCartTestDB(t)

	if err := cs.Add(model.CartLine{RewardID: "1", Name: "Tricou GenTech", Price: 500, Quantity: 1}); err != nil {
		t.Fatalf("add cart line: %v", err)
	}

	line, err := cs.Get("1")
	if err != nil {
		t.Fatalf("get cart line: %v", err)
	}
	if line == nil {
		t.Fatal("expected line, got nil")
	}
	if line.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", line.Quantity)
	}

	// Adding again accumulates quantity on the same line.
	if err := cs.Add(model.CartLine{RewardID: "1", Name: "Tricou GenTech", Price: 500, Quantity: 2}); err != nil {
		t.Fatalf("add cart line again: %v", err)
	}
	line, _ = cs.Get("1")
	if line.Quantity != 3 {
		t.Errorf("quantity = %d, want 3", line.Quantity)
	}

	lines, err := cs.List()
	if err != nil {
		t.Fatalf("list cart lines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one line per reward, got %d", len(lines))
	}
}

func TestCartTotal(t *testing.T) {
	cs, _ := setupCartTestDB(t)

	total, err := cs.Total()
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 0 {
		t.Errorf("empty cart total = %d, want 0", total)
	}

	cs.Add(model.CartLine{RewardID: "1", Price: 500, Name: "Tricou", Quantity: 2})
	cs.Add(model.CartLine{RewardID: "39", Price: 1500, Name: "Voucher", Quantity: 1})

	total, err = cs.Total()
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 2500 {
		t.Errorf("total = %d, want 2500", total)
	}
}

func TestCartDeleteAndClear(t *testing.T) {
	cs, _ := setupCartTestDB(t)

	cs.Add(model.CartLine{RewardID: "1", Price: 500, Name: "Tricou", Quantity: 1})

	deleted, err := cs.Delete("1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report a removed line")
	}

	deleted, err = cs.Delete("1")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if deleted {
		t.Error("expected delete of missing line to report false")
	}

	cs.Add(model.CartLine{RewardID: "1", Price: 500, Name: "Tricou", Quantity: 1})
	cs.Add(model.CartLine{RewardID: "39", Price: 1500, Name: "Voucher", Quantity: 1})
	if err := cs.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	lines, _ := cs.List()
	if len(lines) != 0 {
		t.Errorf("expected empty cart after clear, got %d lines", len(lines))
	}
}
