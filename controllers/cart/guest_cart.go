package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func requireGuestID(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var cart models.GuestCart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"items": []models.GuestCartItem{}, "totals": Price(nil)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "totals": Price(GuestLines(cart.Items))})
	}
}

// POST /guest/cart/items
func AddGuestCartItem(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		product, ok := fetchProduct(c, db, input.ProductID)
		if !ok {
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = models.GuestCart{GuestID: guestID}
				if err := db.Create(&cart).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest cart"})
					return
				}
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
				return
			}
		}

		now := time.Now()

		var item models.GuestCartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		switch {
		case err == nil:
			if err := GuardQuantity(item.Quantity+input.Quantity, product.Stock); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": "insufficient_stock", "stock": product.Stock, "in_cart": item.Quantity})
				return
			}
			item.Quantity += input.Quantity
			item.ProductStock = product.Stock
			item.AddedAt = now
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
				return
			}
			notifier.Publish(Event{Owner: "guest:" + guestID, Action: "updated", ProductID: item.ProductID})
			c.JSON(http.StatusOK, item)

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := GuardQuantity(input.Quantity, product.Stock); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": "insufficient_stock", "stock": product.Stock, "in_cart": 0})
				return
			}
			newItem := GuestLine(product, input.Quantity, now)
			newItem.CartID = cart.CartID
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
				return
			}
			notifier.Publish(Event{Owner: "guest:" + guestID, Action: "added", ProductID: newItem.ProductID})
			c.JSON(http.StatusCreated, newItem)

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		}
	}
}

// PUT /guest/cart/items/:product_id
func SetGuestCartItemQuantity(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := fetchProduct(c, db, productID)
		if !ok {
			return
		}
		if err := GuardQuantity(input.Quantity, product.Stock); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "insufficient_stock", "stock": product.Stock})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		var item models.GuestCartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		item.ProductStock = product.Stock
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
			return
		}

		notifier.Publish(Event{Owner: "guest:" + guestID, Action: "updated", ProductID: productID})
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /guest/cart/items/:product_id
func DeleteGuestCartItem(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.GuestCartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		notifier.Publish(Event{Owner: "guest:" + guestID, Action: "removed", ProductID: productID})
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
	}
}

// DELETE /guest/cart
// Also the logout reset path: clearing the guest slot leaves a shared device
// with an empty cart instead of the previous user's lines.
func ClearGuestCart(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuestID(c)
		if !ok {
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Guest cart already empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}

		notifier.Publish(Event{Owner: "guest:" + guestID, Action: "cleared"})
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
