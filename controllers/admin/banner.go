package adminController

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Pavan17153/SS/media"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadBanner stores a storefront banner image and records it.
func UploadBanner(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save banner: %v", err)})
			return
		}

		banner := models.Banner{ImageURL: imageURL, CreatedAt: time.Now()}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save banner"})
			return
		}

		c.JSON(http.StatusCreated, banner)
	}
}

func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

func DeleteBanner(db *gorm.DB, uploads media.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
			return
		}

		if banner.ImageURL != "" {
			uploads.Remove(banner.ImageURL)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
