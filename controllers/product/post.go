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

// CreateProduct creates a product from a multipart form with an image upload.
func CreateProduct(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, err = strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
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

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Image:       imageURL,
			Category:    c.PostForm("category"),
			SubCategory: c.PostForm("sub_category"),
			Stock:       stock,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
