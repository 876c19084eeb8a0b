package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
)

// CartStore is the slice of the client-state store the cart needs.
type CartStore interface {
	Get(ctx context.Context, userID int) ([]models.CartItem, error)
	Save(ctx context.Context, userID int, items []models.CartItem) error
	Clear(ctx context.Context, userID int) error
}

type CartService struct {
	Store CartStore
	Bus   *events.Bus
}

func (s *CartService) Get(ctx context.Context, userID int) ([]models.CartItem, error) {
	return s.Store.Get(ctx, userID)
}

// Add puts an item into the cart. Adding a product that is already present
// increments the existing line instead of appending a duplicate.
func (s *CartService) Add(ctx context.Context, userID int, item models.CartItem) ([]models.CartItem, error) {
	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		item.ID = uuid.NewString()
		item.AddedAt = time.Now().UTC()
		items = append(items, item)
	}

	if err := s.Store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.publish(userID, items)
	return items, nil
}

// Remove drops a line by its id. Removing an unknown line is a no-op, same
// as filtering a list in local storage.
func (s *CartService) Remove(ctx context.Context, userID int, lineID string) ([]models.CartItem, error) {
	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != lineID {
			kept = append(kept, item)
		}
	}

	if err := s.Store.Save(ctx, userID, kept); err != nil {
		return nil, err
	}
	s.publish(userID, kept)
	return kept, nil
}

// SetQuantity updates one line; a quantity of zero or less removes it.
func (s *CartService) SetQuantity(ctx context.Context, userID int, lineID string, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, userID, lineID)
	}

	items, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == lineID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, models.ErrCartItemNotFound
	}

	if err := s.Store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.publish(userID, items)
	return items, nil
}

func (s *CartService) Clear(ctx context.Context, userID int) error {
	if err := s.Store.Clear(ctx, userID); err != nil {
		return err
	}
	s.publish(userID, []models.CartItem{})
	return nil
}

func (s *CartService) publish(userID int, items []models.CartItem) {
	if s.Bus == nil {
		return
	}
	s.Bus.Publish(events.Event{Topic: events.TopicCartUpdated, UserID: userID, Payload: items})
}
