package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Pavan17153/SS/media"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct updates any subset of product fields from a multipart form.
// Fields not present in the form keep their current value. Lines already in
// carts keep the snapshot taken when they were added.
func UpdateProduct(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			product.Name = name
		}
		if _, ok := c.GetPostForm("description"); ok {
			product.Description = c.PostForm("description")
		}
		if priceStr := c.PostForm("price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, err := strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		if category := c.PostForm("category"); category != "" {
			product.Category = category
		}
		if subCategory := c.PostForm("sub_category"); subCategory != "" {
			product.SubCategory = subCategory
		}

		if file, err := c.FormFile("image"); err == nil {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
				return
			}
			defer src.Close()

			imageURL, err := uploads.Save(file.Filename, src)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			if product.Image != "" {
				uploads.Remove(product.Image)
			}
			product.Image = imageURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
