package adminController

import (
	"log"
	"net/http"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			log.Println("failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

// GetAllUsers lists registered customers for the admin console.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			log.Println("failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
