package orderControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.CancelledPayment{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, email string, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		Ref:           fmt.Sprintf("%d-%s", time.Now().UnixNano(), status),
		CustomerEmail: email,
		PaymentID:     "pay_seed",
		Subtotal:      2000,
		ShippingCost:  120,
		TotalPrice:    2120,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func captureBroadcasts(t *testing.T) *[]models.Order {
	t.Helper()
	var got []models.Order
	orig := broadcastOrder
	broadcastOrder = func(o models.Order) { got = append(got, o) }
	t.Cleanup(func() { broadcastOrder = orig })
	return &got
}

func cancelRequest(db *gorm.DB, orderID uint, email string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(orderID)}}
	c.Set("email", email)
	CancelMyOrder(db)(c)
	return w
}

func statusRequest(db *gorm.DB, orderID uint, status string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := fmt.Sprintf(`{"status":%q}`, status)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(orderID)}}
	UpdateOrderStatus(db)(c)
	return w
}

func TestCancelMyOrderSetsStatusWithoutArchiving(t *testing.T) {
	db := openTestDB(t)
	broadcasts := captureBroadcasts(t)
	order := seedOrder(t, db, "asha@example.com", models.OrderStatusPaid)

	w := cancelRequest(db, order.ID, "asha@example.com")
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, got.Status)

	var archived int64
	db.Model(&models.CancelledPayment{}).Count(&archived)
	assert.Zero(t, archived, "self-service cancel must not write the payment archive")

	require.Len(t, *broadcasts, 1)
	assert.Equal(t, models.OrderStatusCancelled, (*broadcasts)[0].Status)
}

func TestCancelMyOrderRejectedOnceShipped(t *testing.T) {
	db := openTestDB(t)
	broadcasts := captureBroadcasts(t)
	order := seedOrder(t, db, "asha@example.com", models.OrderStatusShipped)

	w := cancelRequest(db, order.ID, "asha@example.com")
	assert.Equal(t, http.StatusConflict, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, got.Status, "rejected cancel must not mutate the order")
	assert.Empty(t, *broadcasts)
}

func TestCancelMyOrderRequiresOwnership(t *testing.T) {
	db := openTestDB(t)
	order := seedOrder(t, db, "asha@example.com", models.OrderStatusPaid)

	w := cancelRequest(db, order.ID, "other@example.com")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusPaid, got.Status)
}

func TestAdminCancelArchivesPaymentOnce(t *testing.T) {
	db := openTestDB(t)
	broadcasts := captureBroadcasts(t)
	order := seedOrder(t, db, "asha@example.com", models.OrderStatusPaid)

	w := statusRequest(db, order.ID, "Cancelled")
	assert.Equal(t, http.StatusOK, w.Code)

	var archive models.CancelledPayment
	require.NoError(t, db.First(&archive, "order_id = ?", order.ID).Error)
	assert.Equal(t, "pay_seed", archive.PaymentID)
	assert.Equal(t, 2120.0, archive.TotalPrice)

	// Cancelled is terminal, so a replay is refused and cannot duplicate
	// the archive row.
	w = statusRequest(db, order.ID, "Cancelled")
	assert.Equal(t, http.StatusConflict, w.Code)

	var archived int64
	db.Model(&models.CancelledPayment{}).Count(&archived)
	assert.Equal(t, int64(1), archived)

	require.Len(t, *broadcasts, 1)
	assert.Equal(t, models.OrderStatusCancelled, (*broadcasts)[0].Status)
}

func TestAdminStatusUpdateHonorsTransitionTable(t *testing.T) {
	db := openTestDB(t)
	captureBroadcasts(t)
	order := seedOrder(t, db, "asha@example.com", models.OrderStatusPaid)

	assert.Equal(t, http.StatusConflict, statusRequest(db, order.ID, "delivered").Code)
	assert.Equal(t, http.StatusBadRequest, statusRequest(db, order.ID, "cancelled").Code)

	assert.Equal(t, http.StatusOK, statusRequest(db, order.ID, "shipped").Code)
	assert.Equal(t, http.StatusOK, statusRequest(db, order.ID, "delivered").Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
}
