package productcontroller

import (
	"net/http"

	"github.com/Pavan17153/SS/media"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a product and removes its image from the
// upload store. Order history keeps its snapshots either way.
func DeleteProduct(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		if product.Image != "" {
			uploads.Remove(product.Image)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
