package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"shinaBack/internal/models"
)

type OrderStore interface {
	Create(ctx context.Context, order models.Order) (models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	GetByUser(ctx context.Context, userID int) ([]models.Order, error)
}

type OrderDraftStore interface {
	Get(ctx context.Context, userID int) (models.OrderDetails, error)
	Save(ctx context.Context, userID int, details models.OrderDetails) error
	Clear(ctx context.Context, userID int) error
}

type OrderService struct {
	Orders OrderStore
	Drafts OrderDraftStore
	Cart   *CartService
	Users  *UserService
}

func (s *OrderService) GetDraft(ctx context.Context, userID int) (models.OrderDetails, error) {
	return s.Drafts.Get(ctx, userID)
}

func (s *OrderService) SaveDraft(ctx context.Context, userID int, details models.OrderDetails) error {
	return s.Drafts.Save(ctx, userID, details)
}

// Checkout turns the current cart and checkout draft into a persisted order.
// Loyalty points cover at most the order total; a failed order insert credits
// the deducted points back, and the cart and draft are cleared only after the
// order row exists.
func (s *OrderService) Checkout(ctx context.Context, userID int) (models.Order, error) {
	items, err := s.Cart.Get(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, models.ErrEmptyCart
	}

	details, err := s.Drafts.Get(ctx, userID)
	if err != nil {
		return models.Order{}, err
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Kind:      item.Kind,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	pointsUsed := 0
	if details.UsePoints {
		profile, err := s.Users.GetProfile(ctx, userID)
		if err != nil {
			return models.Order{}, err
		}
		pointsUsed = profile.Points
		if float64(pointsUsed) > total {
			pointsUsed = int(total)
		}
		if pointsUsed > 0 {
			if _, err := s.Users.DeductPoints(ctx, userID, pointsUsed); err != nil {
				return models.Order{}, err
			}
		}
	}

	order := models.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Status:     models.OrderCreated,
		Items:      orderItems,
		Total:      total - float64(pointsUsed),
		PointsUsed: pointsUsed,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.Orders.Create(ctx, order)
	if err != nil {
		if pointsUsed > 0 {
			if _, refundErr := s.Users.AddPoints(ctx, userID, pointsUsed); refundErr != nil {
				log.Printf("checkout: refunding %d points to user %d failed: %v", pointsUsed, userID, refundErr)
			}
		}
		return models.Order{}, err
	}

	if err := s.Cart.Clear(ctx, userID); err != nil {
		return models.Order{}, err
	}
	if err := s.Drafts.Clear(ctx, userID); err != nil {
		return models.Order{}, err
	}
	return created, nil
}

// GetByID returns an order only to its owner.
func (s *OrderService) GetByID(ctx context.Context, userID int, id string) (models.Order, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order.UserID != userID {
		return models.Order{}, models.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return s.Orders.GetByUser(ctx, userID)
}
