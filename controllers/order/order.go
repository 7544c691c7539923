package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// GetMyOrders lists the authenticated customer's orders, newest first.
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.Get("email")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").
			Where("customer_email = ?", email).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// CancelMyOrder lets a customer cancel their own order while it is still
// paid or unshipped. The payment record is archived alongside.
func CancelMyOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := c.Get("email")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		err := db.Where("id = ? AND customer_email = ?", c.Param("id"), email).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !CustomerCanCancel(order.Status) {
			c.JSON(http.StatusConflict, gin.H{"error": "Order can no longer be cancelled"})
			return
		}

		// Status only. The payment archive is written when an admin marks
		// the order Cancelled, not here.
		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}
		order.Status = models.OrderStatusCancelled

		broadcastOrder(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order": order})
	}
}

// GetAllOrders is the admin listing with optional email search and a
// created-at date range (?email=&from=2026-01-01&to=2026-01-31).
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if email := c.Query("email"); email != "" {
			query = query.Where("customer_email ILIKE ?", "%"+email+"%")
		}
		if status := c.Query("status"); status != "" {
			parsed, err := ParseStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
				return
			}
			query = query.Where("status = ?", parsed)
		}
		if from := c.Query("from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
				return
			}
			query = query.Where("created_at >= ?", t)
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
				return
			}
			query = query.Where("created_at < ?", t.AddDate(0, 0, 1))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// UpdateOrderStatus moves an order through the lifecycle. Only transitions
// the lifecycle table allows go through; a move into Cancelled also archives
// the payment.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input updateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}

		target, err := ParseStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var order models.Order
		err = db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !CanTransition(order.Status, target) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cannot move order from " + string(order.Status) + " to " + string(target),
			})
			return
		}

		if target == models.OrderStatusCancelled {
			if err := cancelOrder(db, &order); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
				return
			}
		} else {
			if err := db.Model(&order).Update("status", target).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
				return
			}
			order.Status = target
		}

		broadcastOrder(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
	}
}

// cancelOrder is the admin cancellation: it flips the status and archives
// the payment in one transaction. The archive row is keyed by order id, so
// replaying a cancellation cannot duplicate it.
func cancelOrder(db *gorm.DB, order *models.Order) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusCancelled

		archive := models.CancelledPayment{
			OrderID:    order.ID,
			PaymentID:  order.PaymentID,
			TotalPrice: order.TotalPrice,
			CreatedAt:  time.Now(),
		}
		return tx.Where(models.CancelledPayment{OrderID: order.ID}).
			FirstOrCreate(&archive).Error
	})
}

// DeleteOrder removes an order and its items. Admin only.
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		err := db.First(&order, "id = ?", c.Param("id")).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}

// GetCancelledPayments lists the refund work queue, newest first.
func GetCancelledPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payments []models.CancelledPayment
		if err := db.Order("created_at DESC").Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cancelled payments"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cancelled_payments": payments})
	}
}

// DeleteCancelledPayment removes an archive row once the refund is settled.
func DeleteCancelledPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("order_id = ?", c.Param("orderId")).Delete(&models.CancelledPayment{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cancelled payment"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cancelled payment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cancelled payment deleted"})
	}
}
