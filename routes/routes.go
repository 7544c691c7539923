package routes

import (
	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	checkoutControllers "github.com/Pavan17153/SS/controllers/checkout"
	"github.com/Pavan17153/SS/media"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the route groups need beyond the database.
type Deps struct {
	DB       *gorm.DB
	Notifier *cartControllers.Notifier
	Checkout *checkoutControllers.Service
	Uploads  media.Store
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Guest cart routes (guest_id in the query, no token)
	SetupGuestRoutes(r, d)

	// User routes (JWT-protected)
	SetupUserRoutes(r, d)

	// Checkout runs with or without a token
	SetupCheckoutRoutes(r, d)

	// Customer order routes (JWT-protected) + admin order routes
	SetupOrderRoutes(r, d)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, d)
}
