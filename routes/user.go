package routes

import (
	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	"github.com/Pavan17153/SS/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires a session JWT.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(d.DB))                                    // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(d.DB, d.Notifier))                       // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity(d.DB, d.Notifier))     // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.DB, d.Notifier))       // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(d.DB, d.Notifier))                   // DELETE /user/cart
		}
	}
}
