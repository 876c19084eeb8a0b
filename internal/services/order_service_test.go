package services

import (
	"context"
	"errors"
	"testing"

	"shinaBack/internal/models"
)

type memoryOrderStore struct {
	orders map[string]models.Order
}

func newMemoryOrderStore() *memoryOrderStore {
	return &memoryOrderStore{orders: make(map[string]models.Order)}
}

func (m *memoryOrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	m.orders[order.ID] = order
	return order, nil
}

func (m *memoryOrderStore) GetByID(ctx context.Context, id string) (models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return models.Order{}, models.ErrOrderNotFound
	}
	return order, nil
}

func (m *memoryOrderStore) GetByUser(ctx context.Context, userID int) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memoryDraftStore struct {
	drafts map[int]models.OrderDetails
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[int]models.OrderDetails)}
}

func (m *memoryDraftStore) Get(ctx context.Context, userID int) (models.OrderDetails, error) {
	return m.drafts[userID], nil
}

func (m *memoryDraftStore) Save(ctx context.Context, userID int, details models.OrderDetails) error {
	m.drafts[userID] = details
	return nil
}

func (m *memoryDraftStore) Clear(ctx context.Context, userID int) error {
	delete(m.drafts, userID)
	return nil
}

func newOrderFixture(points int) (*OrderService, *memoryCartStore, *memoryProfileStore) {
	cartStore := newMemoryCartStore()
	profiles := newMemoryProfileStore()
	profiles.profiles[1] = models.Profile{ID: 1, Points: points}

	users := newUserService(profiles, &stubAccounts{accounts: map[int]models.Account{}})
	svc := &OrderService{
		Orders: newMemoryOrderStore(),
		Drafts: newMemoryDraftStore(),
		Cart:   &CartService{Store: cartStore},
		Users:  users,
	}
	return svc, cartStore, profiles
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newOrderFixture(0)
	if _, err := svc.Checkout(context.Background(), 1); !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("err = %v; want ErrEmptyCart", err)
	}
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	svc, cartStore, _ := newOrderFixture(0)
	ctx := context.Background()

	svc.Cart.Add(ctx, 1, models.CartItem{ProductID: "t-1", Name: "Tire", Price: 7000, Quantity: 4})
	svc.Drafts.Save(ctx, 1, models.OrderDetails{Address: "Abay 10", Delivery: "courier"})

	order, err := svc.Checkout(ctx, 1)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if order.Total != 28000 {
		t.Errorf("Total = %v; want 28000", order.Total)
	}
	if order.Status != models.OrderCreated {
		t.Errorf("Status = %q; want %q", order.Status, models.OrderCreated)
	}
	if order.Details.Address != "Abay 10" {
		t.Errorf("Details.Address = %q; want the saved draft", order.Details.Address)
	}
	if len(cartStore.items[1]) != 0 {
		t.Error("cart was not cleared after checkout")
	}
}

func TestCheckoutSpendsPoints(t *testing.T) {
	svc, _, profiles := newOrderFixture(1000)
	ctx := context.Background()

	svc.Cart.Add(ctx, 1, models.CartItem{ProductID: "t-1", Price: 7000, Quantity: 2})
	svc.Drafts.Save(ctx, 1, models.OrderDetails{UsePoints: true})

	order, err := svc.Checkout(ctx, 1)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if order.PointsUsed != 1000 {
		t.Errorf("PointsUsed = %d; want 1000", order.PointsUsed)
	}
	if order.Total != 13000 {
		t.Errorf("Total = %v; want 13000 after the point discount", order.Total)
	}
	if profiles.profiles[1].Points != 0 {
		t.Errorf("remaining points = %d; want 0", profiles.profiles[1].Points)
	}
}

func TestCheckoutPointsCappedAtTotal(t *testing.T) {
	svc, _, profiles := newOrderFixture(50000)
	ctx := context.Background()

	svc.Cart.Add(ctx, 1, models.CartItem{ProductID: "t-1", Price: 3000, Quantity: 1})
	svc.Drafts.Save(ctx, 1, models.OrderDetails{UsePoints: true})

	order, err := svc.Checkout(ctx, 1)
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if order.PointsUsed != 3000 {
		t.Errorf("PointsUsed = %d; want 3000", order.PointsUsed)
	}
	if order.Total != 0 {
		t.Errorf("Total = %v; want 0", order.Total)
	}
	if profiles.profiles[1].Points != 47000 {
		t.Errorf("remaining points = %d; want 47000", profiles.profiles[1].Points)
	}
}

type failingOrderStore struct {
	memoryOrderStore
	err error
}

func (f *failingOrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	return models.Order{}, f.err
}

func TestCheckoutRefundsPointsWhenCreateFails(t *testing.T) {
	svc, cartStore, profiles := newOrderFixture(1000)
	svc.Orders = &failingOrderStore{err: errors.New("insert failed")}
	ctx := context.Background()

	svc.Cart.Add(ctx, 1, models.CartItem{ProductID: "t-1", Price: 7000, Quantity: 2})
	svc.Drafts.Save(ctx, 1, models.OrderDetails{UsePoints: true})

	if _, err := svc.Checkout(ctx, 1); err == nil {
		t.Fatal("Checkout succeeded with a failing order store")
	}
	if got := profiles.profiles[1].Points; got != 1000 {
		t.Errorf("points after failed checkout = %d; want 1000 back", got)
	}
	if len(cartStore.items[1]) != 1 {
		t.Error("cart was cleared despite the failed checkout")
	}
}

func TestGetOrderByIDChecksOwnership(t *testing.T) {
	svc, _, _ := newOrderFixture(0)
	ctx := context.Background()

	svc.Cart.Add(ctx, 1, models.CartItem{ProductID: "t-1", Price: 100, Quantity: 1})
	order, err := svc.Checkout(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.GetByID(ctx, 2, order.ID); !errors.Is(err, models.ErrOrderNotFound) {
		t.Errorf("foreign order lookup: err = %v; want ErrOrderNotFound", err)
	}
	if _, err := svc.GetByID(ctx, 1, order.ID); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
}
