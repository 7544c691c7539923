package checkoutControllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	cartControllers "github.com/Pavan17153/SS/controllers/cart"
	"github.com/Pavan17153/SS/gateway"
	"github.com/Pavan17153/SS/models"
	"github.com/google/uuid"
)

// PaymentGateway is the two-call bridge checkout drives: register an order
// for an amount, then verify the signed completion payload.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountRupees float64) (gateway.Order, error)
	VerifySignature(conf gateway.Confirmation) bool
}

// Store is the persistence surface of the orchestrator.
type Store interface {
	// LoadCart resolves an owner key ("user:<uid>" / "guest:<id>") to its
	// lines. Exactly one tier per call, never mixed.
	LoadCart(ctx context.Context, owner string) ([]models.CartItem, error)
	SaveSession(ctx context.Context, session *models.CheckoutSession) error
	// SessionByGatewayOrder returns the session with its frozen line items.
	SessionByGatewayOrder(ctx context.Context, gatewayOrderID string) (models.CheckoutSession, error)
	// CompleteCheckout atomically creates the order, marks the session
	// completed and clears the cart tier the session was opened for.
	CompleteCheckout(ctx context.Context, session *models.CheckoutSession, order *models.Order) error
	// DecrementStock is best effort and non-transactional; overselling
	// under concurrent checkouts is an accepted limitation.
	DecrementStock(ctx context.Context, items []models.OrderItem)
}

// Service runs the checkout flow: precondition checks, identity resolution,
// the payment handshake and the one-time order write.
type Service struct {
	Store    Store
	Identity IdentityProvider
	Gateway  PaymentGateway
	Policy   ProvisionPolicy

	// KeyID is the public gateway key the hosted payment UI is opened with.
	KeyID string

	// Optional side-effect hooks; nil disables them.
	SendCredentialMail func(email, resetLink string) error
	NotifyCartCleared  func(owner string)
	BroadcastOrder     func(order models.Order)
}

type BeginRequest struct {
	Billing      models.BillingDetails
	AgreeToTerms bool

	// From the session token, when present.
	AuthUserID string
	AuthEmail  string

	// Guest cart tier when the caller is not authenticated.
	GuestID string
}

type BeginResponse struct {
	CheckoutID     string  `json:"checkout_id"`
	GatewayOrderID string  `json:"gateway_order_id"`
	AmountMinor    int64   `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"key_id"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	TotalPrice     float64 `json:"total_price"`

	// Set when a new account was silently provisioned for the billing
	// email; the UI must tell the customer about it.
	ProvisionedUID string `json:"-"`
	Provisioned    bool   `json:"account_provisioned"`
}

type CompleteRequest struct {
	Confirmation gateway.Confirmation

	AuthUserID string
	AuthEmail  string
}

// Begin validates the submission, resolves the identity, registers the
// gateway order and records the pending handshake. It makes no network call
// until every synchronous precondition has passed.
func (s *Service) Begin(ctx context.Context, req BeginRequest) (BeginResponse, error) {
	billing := req.Billing
	if err := ValidateBilling(&billing); err != nil {
		return BeginResponse{}, err
	}
	if !req.AgreeToTerms {
		return BeginResponse{}, ErrTermsNotAccepted
	}

	owner := req.cartOwner()
	if owner == "" {
		return BeginResponse{}, &ValidationError{Field: "guest_id", Reason: "is required for guest checkout"}
	}
	lines, err := s.Store.LoadCart(ctx, owner)
	if err != nil {
		return BeginResponse{}, err
	}
	if len(lines) == 0 {
		return BeginResponse{}, ErrEmptyCart
	}

	email := strings.ToLower(strings.TrimSpace(billing.Email))
	billing.Email = email

	identity, provisioned, err := s.resolveIdentity(ctx, req, email)
	if err != nil {
		return BeginResponse{}, err
	}

	totals := cartControllers.Price(lines)

	gwOrder, err := s.Gateway.CreateOrder(ctx, totals.Total)
	if err != nil {
		return BeginResponse{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	session := models.CheckoutSession{
		ID:             uuid.NewString(),
		GatewayOrderID: gwOrder.OrderID,
		UserID:         identity.UID,
		Email:          email,
		CartOwner:      owner,
		Billing:        billing,
		Items:          sessionItems(lines),
		Subtotal:       totals.Subtotal,
		ShippingCost:   totals.Shipping,
		TotalPrice:     totals.Total,
		AmountMinor:    gwOrder.AmountMinor,
		Currency:       gwOrder.Currency,
		Status:         models.CheckoutPending,
		CreatedAt:      time.Now(),
	}
	if err := s.Store.SaveSession(ctx, &session); err != nil {
		return BeginResponse{}, err
	}

	return BeginResponse{
		CheckoutID:     session.ID,
		GatewayOrderID: gwOrder.OrderID,
		AmountMinor:    gwOrder.AmountMinor,
		Currency:       gwOrder.Currency,
		KeyID:          s.KeyID,
		Email:          email,
		Phone:          billing.Phone,
		TotalPrice:     totals.Total,
		ProvisionedUID: identity.UID,
		Provisioned:    provisioned,
	}, nil
}

func (req BeginRequest) cartOwner() string {
	if req.AuthUserID != "" {
		return "user:" + req.AuthUserID
	}
	if req.GuestID != "" {
		return "guest:" + req.GuestID
	}
	return ""
}

func (s *Service) resolveIdentity(ctx context.Context, req BeginRequest, email string) (Identity, bool, error) {
	if req.AuthUserID != "" && strings.EqualFold(req.AuthEmail, email) {
		return Identity{UID: req.AuthUserID, Email: email}, false, nil
	}

	_, err := s.Identity.LookupByEmail(ctx, email)
	switch {
	case err == nil:
		return Identity{}, false, ErrAccountExists
	case !errors.Is(err, ErrIdentityNotFound):
		return Identity{}, false, err
	}

	switch s.Policy {
	case ProvisionBlock:
		return Identity{}, false, ErrAccountExists
	case ProvisionPrompt:
		return Identity{}, false, ErrSignupRequired
	}

	identity, resetLink, err := s.Identity.Provision(ctx, email)
	if err != nil {
		// Provisioning failed outright; fall back to requiring a manual login.
		log.Printf("checkout: provisioning failed for %s: %v", email, err)
		return Identity{}, false, ErrAccountExists
	}

	if s.SendCredentialMail != nil && resetLink != "" {
		if err := s.SendCredentialMail(email, resetLink); err != nil {
			log.Printf("checkout: credential mail to %s failed: %v", email, err)
		}
	}

	return identity, true, nil
}

// Complete consumes the signed confirmation from the hosted payment UI.
// Only a verified signature followed by a matching session identity results
// in an order, and that order is written exactly once.
func (s *Service) Complete(ctx context.Context, req CompleteRequest) (models.Order, error) {
	if !s.Gateway.VerifySignature(req.Confirmation) {
		// Distinct from ordinary failures: a mismatched signature on a real
		// completion callback is a tamper signal.
		log.Printf("checkout: VERIFICATION FAILURE gateway_order=%s payment=%s", req.Confirmation.OrderID, req.Confirmation.PaymentID)
		return models.Order{}, ErrVerification
	}

	session, err := s.Store.SessionByGatewayOrder(ctx, req.Confirmation.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	if session.Status == models.CheckoutCompleted {
		return models.Order{}, ErrSessionCompleted
	}

	// The session identity must still be the caller: a login switch between
	// payment start and order write must not persist an order.
	if !strings.EqualFold(req.AuthEmail, session.Email) {
		return models.Order{}, ErrSessionMismatch
	}

	// The order embeds the lines frozen at Begin. The live cart may have
	// changed while the hosted UI was open; the customer paid for the
	// priced snapshot, so that is what the order records.
	order := models.Order{
		Ref:            orderRef(),
		CustomerEmail:  session.Email,
		CustomerPhone:  session.Billing.Phone,
		Billing:        session.Billing,
		Items:          orderItems(session.Items),
		Subtotal:       session.Subtotal,
		ShippingCost:   session.ShippingCost,
		TotalPrice:     session.TotalPrice,
		PaymentID:      req.Confirmation.PaymentID,
		GatewayOrderID: req.Confirmation.OrderID,
		Status:         models.OrderStatusPaid,
		CreatedAt:      time.Now(),
	}

	if err := s.Store.CompleteCheckout(ctx, &session, &order); err != nil {
		// Payment captured, no order recorded. Priority-1 inconsistency:
		// must reach an operator, not just the customer.
		log.Printf("CRITICAL checkout: payment captured without order record payment=%s gateway_order=%s email=%s amount=%.2f: %v",
			req.Confirmation.PaymentID, req.Confirmation.OrderID, session.Email, session.TotalPrice, err)
		return models.Order{}, ErrOrderPersist
	}

	s.Store.DecrementStock(ctx, order.Items)

	if s.NotifyCartCleared != nil {
		s.NotifyCartCleared(session.CartOwner)
	}
	if s.BroadcastOrder != nil {
		s.BroadcastOrder(order)
	}

	return order, nil
}

func sessionItems(lines []models.CartItem) []models.CheckoutSessionItem {
	items := make([]models.CheckoutSessionItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.CheckoutSessionItem{
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			ProductImage:       l.ProductImage,
			ProductCategory:    l.ProductCategory,
			ProductSubCategory: l.ProductSubCategory,
			UnitPrice:          l.UnitPrice,
			Quantity:           l.Quantity,
		})
	}
	return items
}

func orderItems(lines []models.CheckoutSessionItem) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, models.OrderItem{
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			ProductImage:       l.ProductImage,
			ProductCategory:    l.ProductCategory,
			ProductSubCategory: l.ProductSubCategory,
			UnitPrice:          l.UnitPrice,
			Quantity:           l.Quantity,
		})
	}
	return items
}

func orderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
