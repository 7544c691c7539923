package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type loginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
	GuestID string `json:"guest_id"`
}

// LoginHandler verifies a Firebase ID token, upserts the user row, merges
// any guest cart into the user cart (the anonymous→authenticated
// transition) and mints a session JWT.
func LoginHandler(db *gorm.DB, notifier *cartControllers.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Firebase ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		uid := token.UID

		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token carries no email"})
			return
		}

		var user models.User
		err = db.Where("id = ?", uid).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:       uid,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Cart:     models.Cart{UserID: uid},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			merged, err := MergeGuestCart(db, req.GuestID, user.ID)
			switch {
			case err != nil:
				mergeStatus = "merge-failed"
			case merged:
				mergeStatus = "merged"
				notifier.Publish(cartControllers.Event{Owner: "user:" + user.ID, Action: "updated"})
				notifier.Publish(cartControllers.Event{Owner: "guest:" + req.GuestID, Action: "cleared"})
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        IssueUserJWT(email, user.ID, name, picture),
		})
	}
}

// IssueUserJWT mints the HS256 session token carried by the storefront.
func IssueUserJWT(email, userID, name, picture string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    "user",
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ""
	}
	return signed
}
