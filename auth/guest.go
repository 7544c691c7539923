package auth

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /auth/guest
// CreateGuestUser issues a fresh guest identity. Devices call this whenever
// they have no session, including right after logout, so the guest tier
// always starts empty.
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + strings.ReplaceAll(uuid.NewString(), "-", "")

		guest := models.GuestUser{
			ID:        guestID,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}

		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
			return
		}

		token, err := issueGuestToken(guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guestID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func issueGuestToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    "guest",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
