package routes

import (
	adminController "github.com/Pavan17153/SS/controllers/admin"
	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	productcontroller "github.com/Pavan17153/SS/controllers/product"
	"github.com/Pavan17153/SS/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the "/admin/*" console endpoints. All of them
// sit behind the API key.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// Catalog management
		adminGroup.POST("/products", productcontroller.CreateProduct(d.DB, d.Uploads))       // POST /admin/products
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(d.DB, d.Uploads))    // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(d.DB, d.Uploads)) // DELETE /admin/products/:id

		adminGroup.POST("/categories", productcontroller.CreateCategory(d.DB, d.Uploads))       // POST /admin/categories
		adminGroup.DELETE("/categories/:id", productcontroller.DeleteCategory(d.DB, d.Uploads)) // DELETE /admin/categories/:id

		// Storefront banners
		adminGroup.POST("/banners", adminController.UploadBanner(d.DB, d.Uploads))       // POST /admin/banners
		adminGroup.GET("/banners", adminController.GetBanners(d.DB))                     // GET /admin/banners
		adminGroup.DELETE("/banners/:id", adminController.DeleteBanner(d.DB, d.Uploads)) // DELETE /admin/banners/:id

		// People
		adminGroup.GET("/admins", adminController.GetAllAdmins(d.DB))                // GET /admin/admins
		adminGroup.GET("/users", adminController.GetAllUsers(d.DB))                  // GET /admin/users
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(d.DB)) // GET /admin/users/:user_id/cart
	}
}
