package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func userClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "uid-1",
		"email":   "asha@example.com",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func guestClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "guest_abc",
		"role":    "guest",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenAcceptsUserSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(ValidateToken)

	w := doRequest(r, signToken(t, "test-secret", userClaims()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uid-1")
	assert.Contains(t, w.Body.String(), "asha@example.com")
}

func TestValidateTokenRejectsGuestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(ValidateToken)

	w := doRequest(r, signToken(t, "test-secret", guestClaims()))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenRejectsMissingAndBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(ValidateToken)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "not-a-jwt").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, signToken(t, "wrong-secret", userClaims())).Code)
}

func TestOptionalTokenLetsAnonymousThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(OptionalToken)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "uid-1")
}

func TestOptionalTokenIgnoresGuestIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(OptionalToken)

	w := doRequest(r, signToken(t, "test-secret", guestClaims()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "guest_abc")
}
