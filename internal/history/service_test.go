package history

import (
	"context"
	"testing"
)

func TestRecord_CaseInsensitiveDedupKeepsNewCasing(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	list := service.Record(ctx, "client-1", nil, "tacos")
	list = service.Record(ctx, "client-1", list, "Pizza")
	list = service.Record(ctx, "client-1", list, "Tacos")

	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(list), list)
	}
	if list[0] != "Tacos" {
		t.Errorf("expected new casing at position 0, got %q", list[0])
	}
	if list[1] != "Pizza" {
		t.Errorf("expected Pizza at position 1, got %q", list[1])
	}
}

func TestRecord_CapsAtFiveMostRecentFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	queries := []string{"one", "two", "three", "four", "five", "six", "seven"}
	var list []string
	for _, q := range queries {
		list = service.Record(ctx, "client-1", list, q)
	}

	if len(list) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(list))
	}
	want := []string{"seven", "six", "five", "four", "three"}
	for i, w := range want {
		if list[i] != w {
			t.Errorf("position %d: expected %q, got %q", i, w, list[i])
		}
	}
}

func TestRecord_PersistsFullList(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	list := service.Record(ctx, "client-1", nil, "Ramen")
	service.Record(ctx, "client-1", list, "Sushi")

	stored, _ := repo.Load(ctx, "client-1")
	if len(stored) != 2 || stored[0] != "Sushi" {
		t.Fatalf("unexpected persisted history: %v", stored)
	}
}

func TestClear_PersistsEmptyImmediately(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	list := service.Record(ctx, "client-1", nil, "Ramen")
	_ = list
	service.Clear(ctx, "client-1")

	stored, _ := repo.Load(ctx, "client-1")
	if len(stored) != 0 {
		t.Fatalf("expected empty persisted history, got %v", stored)
	}
}
