package auth

import (
	"errors"
	"time"

	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	"github.com/Pavan17153/SS/models"
	"gorm.io/gorm"
)

// MergeLines reconciles a guest cart into a user cart: quantities sum when
// the same product appears in both, otherwise the guest line is appended.
// User line order is preserved, new lines go to the end. Stock is not
// re-checked here; it is re-validated on the next increment and at checkout.
func MergeLines(userItems, guestItems []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(userItems))
	copy(merged, userItems)

	for _, g := range guestItems {
		found := false
		for i := range merged {
			if merged[i].ProductID == g.ProductID {
				merged[i].Quantity += g.Quantity
				merged[i].AddedAt = g.AddedAt
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, g)
		}
	}
	return merged
}

// MergeGuestCart runs once per login. The guest cart is consumed: after a
// successful merge it no longer exists, so a repeated call finds nothing to
// merge and is a no-op. Returns whether anything was merged.
func MergeGuestCart(db *gorm.DB, guestID, userID string) (bool, error) {
	merged := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var guestCart models.GuestCart
		if err := tx.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // nothing to merge
			}
			return err
		}

		var userCart models.Cart
		err := tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).Where("user_id = ?", userID).First(&userCart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userCart = models.Cart{UserID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		mergedLines := MergeLines(userCart.Items, cartControllers.GuestLines(guestCart.Items))

		// Replace the user tier with the merged result
		if err := tx.Where("cart_id = ?", userCart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range mergedLines {
			mergedLines[i].ID = 0
			mergedLines[i].CartID = userCart.CartID
			if mergedLines[i].AddedAt.IsZero() {
				mergedLines[i].AddedAt = time.Now()
			}
		}
		if len(mergedLines) > 0 {
			if err := tx.Create(&mergedLines).Error; err != nil {
				return err
			}
		}

		// Consume the guest tier
		if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&guestCart).Error; err != nil {
			return err
		}

		merged = len(guestCart.Items) > 0
		return nil
	})

	return merged, err
}
