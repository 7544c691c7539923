package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var sortColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"stock":      true,
}

// GetProducts lists the catalog with optional search, category and price
// filters. Default order is newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.Query("category")
		subCategory := c.Query("sub_category")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}
		if !sortColumns[sortBy] {
			sortBy = "created_at"
		}

		query := db.Model(&models.Product{})

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if subCategory != "" {
			query = query.Where("sub_category = ?", subCategory)
		}
		if minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		var products []models.Product
		if err := query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
