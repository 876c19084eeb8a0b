package services

import (
	"context"
	"errors"
	"testing"

	"shinaBack/internal/events"
	"shinaBack/internal/models"
)

type memoryCartStore struct {
	items map[int][]models.CartItem
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{items: make(map[int][]models.CartItem)}
}

func (m *memoryCartStore) Get(ctx context.Context, userID int) ([]models.CartItem, error) {
	return m.items[userID], nil
}

func (m *memoryCartStore) Save(ctx context.Context, userID int, items []models.CartItem) error {
	m.items[userID] = items
	return nil
}

func (m *memoryCartStore) Clear(ctx context.Context, userID int) error {
	delete(m.items, userID)
	return nil
}

func TestCartAddAssignsLineID(t *testing.T) {
	svc := &CartService{Store: newMemoryCartStore()}

	items, err := svc.Add(context.Background(), 1, models.CartItem{ProductID: "t-1", Name: "Tire", Price: 7000})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items; want 1", len(items))
	}
	if items[0].ID == "" {
		t.Error("line id was not assigned")
	}
	if items[0].Quantity != 1 {
		t.Errorf("Quantity = %d; want 1 by default", items[0].Quantity)
	}
	if items[0].AddedAt.IsZero() {
		t.Error("AddedAt was not set")
	}
}

func TestCartAddMergesSameProduct(t *testing.T) {
	svc := &CartService{Store: newMemoryCartStore()}
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, models.CartItem{ProductID: "t-1", Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	items, err := svc.Add(ctx, 1, models.CartItem{ProductID: "t-1", Quantity: 3})
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 1 {
		t.Fatalf("got %d lines; want 1 merged line", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("Quantity = %d; want 5", items[0].Quantity)
	}
}

func TestCartSetQuantity(t *testing.T) {
	svc := &CartService{Store: newMemoryCartStore()}
	ctx := context.Background()

	items, _ := svc.Add(ctx, 1, models.CartItem{ProductID: "t-1"})
	lineID := items[0].ID

	items, err := svc.SetQuantity(ctx, 1, lineID, 4)
	if err != nil {
		t.Fatalf("SetQuantity error: %v", err)
	}
	if items[0].Quantity != 4 {
		t.Errorf("Quantity = %d; want 4", items[0].Quantity)
	}

	// Zero removes the line.
	items, err = svc.SetQuantity(ctx, 1, lineID, 0)
	if err != nil {
		t.Fatalf("SetQuantity(0) error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d lines; want 0", len(items))
	}

	if _, err := svc.SetQuantity(ctx, 1, "missing", 2); !errors.Is(err, models.ErrCartItemNotFound) {
		t.Errorf("SetQuantity on unknown line: err = %v; want ErrCartItemNotFound", err)
	}
}

func TestCartRemoveUnknownLineIsNoop(t *testing.T) {
	svc := &CartService{Store: newMemoryCartStore()}
	ctx := context.Background()

	svc.Add(ctx, 1, models.CartItem{ProductID: "t-1"})
	items, err := svc.Remove(ctx, 1, "missing")
	if err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d lines; want the cart untouched", len(items))
	}
}

func TestCartPublishesEvents(t *testing.T) {
	bus := events.NewBus()
	ch, cancel := bus.Subscribe(9)
	defer cancel()

	svc := &CartService{Store: newMemoryCartStore(), Bus: bus}
	if _, err := svc.Add(context.Background(), 9, models.CartItem{ProductID: "t-1"}); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-ch:
		if ev.Topic != events.TopicCartUpdated {
			t.Errorf("Topic = %q; want %q", ev.Topic, events.TopicCartUpdated)
		}
	default:
		t.Fatal("no cartUpdated event published")
	}
}
