package routes

import (
	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	productcontroller "github.com/Pavan17153/SS/controllers/product"
	"github.com/Pavan17153/SS/middleware"
	"github.com/gin-gonic/gin"
)

// SetupGuestRoutes registers the endpoints an unauthenticated visitor uses.
// The guest cart is addressed by the guest_id issued at /auth/guest.
func SetupGuestRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productcontroller.GetProducts(d.DB))        // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(d.DB)) // GET /products/:id
	r.GET("/categories", productcontroller.GetCategories(d.DB))    // GET /categories

	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("/", cartControllers.GetGuestCart(d.DB))                                    // GET /guest/cart?guest_id=
		guestCart.POST("/", cartControllers.AddGuestCartItem(d.DB, d.Notifier))                   // POST /guest/cart?guest_id=
		guestCart.PUT("/:product_id", cartControllers.SetGuestCartItemQuantity(d.DB, d.Notifier)) // PUT /guest/cart/:product_id?guest_id=
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(d.DB, d.Notifier))   // DELETE /guest/cart/:product_id?guest_id=
		guestCart.DELETE("/", cartControllers.ClearGuestCart(d.DB, d.Notifier))                   // DELETE /guest/cart?guest_id=
	}

	// Live cart events for both tiers; guests pass guest_id in the query,
	// users present their token.
	r.GET("/cart/events", middleware.OptionalToken, cartControllers.CartEventsHandler(d.Notifier))
}
