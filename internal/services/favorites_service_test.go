package services

import (
	"context"
	"testing"

	"shinaBack/internal/models"
)

type memoryFavoritesStore struct {
	items map[int][]models.FavoriteItem
}

func newMemoryFavoritesStore() *memoryFavoritesStore {
	return &memoryFavoritesStore{items: make(map[int][]models.FavoriteItem)}
}

func (m *memoryFavoritesStore) Get(ctx context.Context, userID int) ([]models.FavoriteItem, error) {
	return m.items[userID], nil
}

func (m *memoryFavoritesStore) Save(ctx context.Context, userID int, items []models.FavoriteItem) error {
	m.items[userID] = items
	return nil
}

func TestFavoritesAddIsIdempotent(t *testing.T) {
	svc := &FavoritesService{Store: newMemoryFavoritesStore()}
	ctx := context.Background()

	svc.Add(ctx, 1, models.FavoriteItem{ProductID: "w-1"})
	items, err := svc.Add(ctx, 1, models.FavoriteItem{ProductID: "w-1"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d favorites; want 1", len(items))
	}
}

func TestFavoritesToggle(t *testing.T) {
	svc := &FavoritesService{Store: newMemoryFavoritesStore()}
	ctx := context.Background()
	item := models.FavoriteItem{ProductID: "w-1", Name: "Wheel"}

	favorited, items, err := svc.Toggle(ctx, 1, item)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !favorited || len(items) != 1 {
		t.Errorf("first toggle: favorited=%v items=%d; want true/1", favorited, len(items))
	}

	favorited, items, err = svc.Toggle(ctx, 1, item)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if favorited || len(items) != 0 {
		t.Errorf("second toggle: favorited=%v items=%d; want false/0", favorited, len(items))
	}
}
