package services

import (
	"context"
	"time"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
)

type FavoritesStore interface {
	Get(ctx context.Context, userID int) ([]models.FavoriteItem, error)
	Save(ctx context.Context, userID int, items []models.FavoriteItem) error
}

type FavoritesService struct {
	Store FavoritesStore
	Bus   *events.Bus
}

func (s *FavoritesService) Get(ctx context.Context, userID int) ([]models.FavoriteItem, error) {
	return s.Store.Get(ctx, userID)
}

// Add stores a favorite once per product id.
func (s *FavoritesService) Add(ctx context.Context, userID int, item models.FavoriteItem) ([]models.FavoriteItem, error) {
	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			return items, nil
		}
	}

	item.AddedAt = time.Now().UTC()
	items = append(items, item)
	if err := s.Store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.publish(userID, items)
	return items, nil
}

func (s *FavoritesService) Remove(ctx context.Context, userID int, productID string) ([]models.FavoriteItem, error) {
	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.Store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	s.publish(userID, kept)
	return kept, nil
}

// Toggle adds the item when absent and removes it when present, returning
// whether the product ended up favorited.
func (s *FavoritesService) Toggle(ctx context.Context, userID int, item models.FavoriteItem) (bool, []models.FavoriteItem, error) {
	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return false, nil, err
	}

	for _, existing := range items {
		if existing.ProductID == item.ProductID {
			kept, err := s.Remove(ctx, userID, item.ProductID)
			return false, kept, err
		}
	}

	added, err := s.Add(ctx, userID, item)
	return true, added, err
}

func (s *FavoritesService) publish(userID int, items []models.FavoriteItem) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.Event{Topic: events.TopicFavoritesUpdated, UserID: userID, Payload: items})
}
