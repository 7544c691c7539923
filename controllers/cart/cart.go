package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func requireUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

func fetchProduct(c *gin.Context, db *gorm.DB, productID uint) (models.Product, bool) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		status := http.StatusInternalServerError
		errMsg := "Failed to validate product"
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status = http.StatusBadRequest
			errMsg = "Product does not exist"
		}
		c.JSON(status, gin.H{"error": errMsg})
		return models.Product{}, false
	}
	return product, true
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "totals": Price(nil)})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "totals": Price(cart.Items)})
	}
}

// POST /user/cart/items
// Adds to the existing line when the product is already in the cart,
// otherwise appends a snapshot line. Stock is re-checked here, not at
// merge time.
func AddCartItem(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
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

		// Cart is created lazily on first add
		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cart = models.Cart{UserID: userID}
				if err := db.Create(&cart).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
					return
				}
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
				return
			}
		}

		now := time.Now()

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error
		switch {
		case err == nil:
			if err := Accumulate(&item, input.Quantity, product.Stock, now); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": "insufficient_stock", "stock": product.Stock, "in_cart": item.Quantity})
				return
			}
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			notifier.Publish(Event{Owner: "user:" + userID, Action: "updated", ProductID: item.ProductID})
			c.JSON(http.StatusOK, item)

		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := GuardQuantity(input.Quantity, product.Stock); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": "insufficient_stock", "stock": product.Stock, "in_cart": 0})
				return
			}
			newItem := NewLine(product, input.Quantity, now)
			newItem.CartID = cart.CartID
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			notifier.Publish(Event{Owner: "user:" + userID, Action: "added", ProductID: newItem.ProductID})
			c.JSON(http.StatusCreated, newItem)

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		}
	}
}

// PUT /user/cart/items/:product_id
func SetCartItemQuantity(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
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

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		item.ProductStock = product.Stock
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		notifier.Publish(Event{Owner: "user:" + userID, Action: "updated", ProductID: productID})
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/items/:product_id
func DeleteCartItem(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		notifier.Publish(Event{Owner: "user:" + userID, Action: "removed", ProductID: productID})
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB, notifier *Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Cart already empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		notifier.Publish(Event{Owner: "user:" + userID, Action: "cleared"})
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, []models.CartItem{})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart.Items)
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id64, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id64), nil
}
