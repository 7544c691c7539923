package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Pavan17153/SS/media"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
				return
			}
			defer src.Close()

			imageURL, err = uploads.Save(file.Filename, src)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}

		category := models.Category{Name: name, Image: imageURL}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

func DeleteCategory(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		if category.Image != "" {
			uploads.Remove(category.Image)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
