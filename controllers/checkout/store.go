package checkoutControllers

import (
	"context"
	"errors"
	"log"
	"strings"

	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	"github.com/Pavan17153/SS/models"
	"gorm.io/gorm"
)

// GormStore backs the checkout service with the application database.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) LoadCart(ctx context.Context, owner string) ([]models.CartItem, error) {
	db := s.DB.WithContext(ctx)

	switch {
	case strings.HasPrefix(owner, "user:"):
		var cart models.Cart
		err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
			Where("user_id = ?", strings.TrimPrefix(owner, "user:")).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return cart.Items, nil

	case strings.HasPrefix(owner, "guest:"):
		var cart models.GuestCart
		err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
			Where("guest_id = ?", strings.TrimPrefix(owner, "guest:")).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return cartControllers.GuestLines(cart.Items), nil
	}

	return nil, errors.New("checkout: unknown cart owner key " + owner)
}

func (s *GormStore) SaveSession(ctx context.Context, session *models.CheckoutSession) error {
	return s.DB.WithContext(ctx).Create(session).Error
}

func (s *GormStore) SessionByGatewayOrder(ctx context.Context, gatewayOrderID string) (models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := s.DB.WithContext(ctx).Preload("Items").
		Where("gateway_order_id = ?", gatewayOrderID).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CheckoutSession{}, ErrSessionNotFound
	}
	if err != nil {
		return models.CheckoutSession{}, err
	}
	return session, nil
}

// CompleteCheckout writes the order, flips the session to completed and
// empties the cart tier the session was opened for, all in one transaction.
func (s *GormStore) CompleteCheckout(ctx context.Context, session *models.CheckoutSession, order *models.Order) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		res := tx.Model(&models.CheckoutSession{}).
			Where("id = ? AND status = ?", session.ID, models.CheckoutPending).
			Update("status", models.CheckoutCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSessionCompleted
		}
		session.Status = models.CheckoutCompleted

		return clearOwnerCart(tx, session.CartOwner)
	})
}

func clearOwnerCart(tx *gorm.DB, owner string) error {
	switch {
	case strings.HasPrefix(owner, "user:"):
		var cart models.Cart
		err := tx.Where("user_id = ?", strings.TrimPrefix(owner, "user:")).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error

	case strings.HasPrefix(owner, "guest:"):
		var cart models.GuestCart
		err := tx.Where("guest_id = ?", strings.TrimPrefix(owner, "guest:")).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error
	}
	return nil
}

// DecrementStock runs outside the order transaction. A line that no longer
// has enough stock is skipped and logged rather than failing the order the
// customer already paid for.
func (s *GormStore) DecrementStock(ctx context.Context, items []models.OrderItem) {
	db := s.DB.WithContext(ctx)
	for _, item := range items {
		res := db.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
		if res.Error != nil {
			log.Printf("checkout: stock decrement failed for product %d: %v", item.ProductID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			log.Printf("checkout: stock for product %d below ordered quantity %d, not decremented", item.ProductID, item.Quantity)
		}
	}
}
