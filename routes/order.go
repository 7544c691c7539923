package routes

import (
	orderControllers "github.com/Pavan17153/SS/controllers/order"
	"github.com/Pavan17153/SS/middleware"
	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes registers customer order endpoints (JWT) and the admin
// order console (API key).
func SetupOrderRoutes(r *gin.Engine, d Deps) {
	myOrders := r.Group("/orders")
	myOrders.Use(middleware.ValidateToken)
	{
		myOrders.GET("/", orderControllers.GetMyOrders(d.DB))              // GET /orders
		myOrders.POST("/:id/cancel", orderControllers.CancelMyOrder(d.DB)) // POST /orders/:id/cancel
	}

	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.ValidateAPIKey)
	{
		adminOrders.GET("/", orderControllers.GetAllOrders(d.DB))               // GET /admin/orders?email=&status=&from=&to=
		adminOrders.PUT("/:id/status", orderControllers.UpdateOrderStatus(d.DB)) // PUT /admin/orders/:id/status
		adminOrders.DELETE("/:id", orderControllers.DeleteOrder(d.DB))           // DELETE /admin/orders/:id
	}

	cancelled := r.Group("/admin/cancelled-payments")
	cancelled.Use(middleware.ValidateAPIKey)
	{
		cancelled.GET("/", orderControllers.GetCancelledPayments(d.DB))                // GET /admin/cancelled-payments
		cancelled.DELETE("/:orderId", orderControllers.DeleteCancelledPayment(d.DB))   // DELETE /admin/cancelled-payments/:orderId
	}

	// Live feed for the admin dashboard
	r.GET("/admin/orders/ws", orderControllers.OrderWebSocketHandler)
}
