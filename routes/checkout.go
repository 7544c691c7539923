package routes

import (
	checkoutControllers "github.com/Pavan17153/SS/controllers/checkout"
	"github.com/Pavan17153/SS/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCheckoutRoutes registers the payment handshake. OptionalToken lets
// both logged-in users and guests through; the service decides identity.
func SetupCheckoutRoutes(r *gin.Engine, d Deps) {
	checkoutGroup := r.Group("/checkout")
	checkoutGroup.Use(middleware.OptionalToken)
	{
		checkoutGroup.POST("/begin", checkoutControllers.BeginCheckoutHandler(d.Checkout))       // POST /checkout/begin
		checkoutGroup.POST("/complete", checkoutControllers.CompleteCheckoutHandler(d.Checkout)) // POST /checkout/complete
	}
}
