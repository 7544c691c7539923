package checkoutControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Pavan17153/SS/auth"
	"github.com/Pavan17153/SS/gateway"
	"github.com/Pavan17153/SS/models"
	"github.com/gin-gonic/gin"
)

type beginCheckoutInput struct {
	Billing      models.BillingDetails `json:"billing_details" binding:"required"`
	AgreeToTerms bool                  `json:"agree_to_terms"`
	GuestID      string                `json:"guest_id"`
}

// BeginCheckoutHandler opens the payment handshake. Works for both logged-in
// users (token on the request) and guests (guest_id in the body); when a new
// account is silently provisioned the response carries a session token for it.
func BeginCheckoutHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input beginCheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		req := BeginRequest{
			Billing:      input.Billing,
			AgreeToTerms: input.AgreeToTerms,
			GuestID:      input.GuestID,
			AuthUserID:   contextString(c, "user_id"),
			AuthEmail:    contextString(c, "email"),
		}

		resp, err := svc.Begin(c.Request.Context(), req)
		if err != nil {
			respondBeginError(c, err)
			return
		}

		body := gin.H{
			"checkout_id":         resp.CheckoutID,
			"gateway_order_id":    resp.GatewayOrderID,
			"amount":              resp.AmountMinor,
			"currency":            resp.Currency,
			"key_id":              resp.KeyID,
			"email":               resp.Email,
			"phone":               resp.Phone,
			"total_price":         resp.TotalPrice,
			"account_provisioned": resp.Provisioned,
		}
		if resp.Provisioned {
			// The rest of the handshake runs as the new identity.
			body["token"] = auth.IssueUserJWT(resp.Email, resp.ProvisionedUID, input.Billing.FirstName, "")
		}
		c.JSON(http.StatusOK, body)
	}
}

// CompleteCheckoutHandler consumes the signed confirmation from the hosted
// payment UI and returns the order it produced.
func CompleteCheckoutHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var conf gateway.Confirmation
		if err := c.ShouldBindJSON(&conf); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		order, err := svc.Complete(c.Request.Context(), CompleteRequest{
			Confirmation: conf,
			AuthUserID:   contextString(c, "user_id"),
			AuthEmail:    contextString(c, "email"),
		})
		if err != nil {
			respondCompleteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

func respondBeginError(c *gin.Context, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "field": vErr.Field})
	case errors.Is(err, ErrTermsNotAccepted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "You must accept the terms and conditions"})
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": "An account already exists for this email, please log in", "code": "account_exists"})
	case errors.Is(err, ErrSignupRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "Please sign up with this email before checking out", "code": "signup_required"})
	case errors.Is(err, ErrGateway):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway unavailable, please try again"})
	default:
		log.Println("checkout begin failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
	}
}

func respondCompleteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVerification):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
	case errors.Is(err, ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "This checkout has already been completed"})
	case errors.Is(err, ErrSessionMismatch):
		c.JSON(http.StatusConflict, gin.H{"error": "Logged-in account does not match this checkout"})
	case errors.Is(err, ErrOrderPersist):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment received but order could not be recorded, please contact support"})
	default:
		log.Println("checkout complete failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete checkout"})
	}
}

func contextString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
