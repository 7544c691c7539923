package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken checks the session JWT and puts user_id and email into the
// request context for the handlers downstream.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	// Guest tokens carry role "guest" and must not reach the user tier.
	if role, _ := claims["role"].(string); role != "user" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "A user session is required"})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	if email, ok := claims["email"].(string); ok {
		c.Set("email", email)
	}

	c.Next()
}

// OptionalToken parses the JWT when present but lets anonymous requests
// through. Checkout uses it: guests may begin checkout unauthenticated.
func OptionalToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.Next()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.Next()
		return
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if role, _ := claims["role"].(string); role == "user" {
			c.Set("user_id", claims["user_id"])
			if email, ok := claims["email"].(string); ok {
				c.Set("email", email)
			}
		}
	}

	c.Next()
}
