package checkoutControllers

import (
	"errors"
	"fmt"
)

var (
	// ErrTermsNotAccepted and ErrEmptyCart are precondition failures: no
	// network call has been made and the user can simply fix and resubmit.
	ErrTermsNotAccepted = errors.New("terms and conditions not accepted")
	ErrEmptyCart        = errors.New("cart is empty")

	// ErrAccountExists means the billing email already has an account; the
	// caller must log in with it before resubmitting.
	ErrAccountExists = errors.New("an account already exists for this email")
	// ErrSignupRequired is the prompt-signup provisioning policy outcome.
	ErrSignupRequired = errors.New("signup required for this email")

	// ErrGateway covers order-creation failures. Retryable by the user;
	// never retried automatically.
	ErrGateway = errors.New("payment gateway unavailable")

	// ErrVerification is a signature mismatch on the completion payload.
	// No order is written and the event is logged as a tamper signal.
	ErrVerification = errors.New("payment signature verification failed")

	// ErrSessionMismatch: the authenticated identity at completion time no
	// longer matches the one the checkout began with. No order is written.
	ErrSessionMismatch = errors.New("session identity changed during checkout")

	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrSessionCompleted = errors.New("checkout session already completed")

	// ErrOrderPersist is the dangerous case: payment verified but the order
	// write failed. Money has moved with no record; the service logs it as
	// a priority-1 inconsistency for manual reconciliation.
	ErrOrderPersist = errors.New("order could not be persisted")
)

// ValidationError names the specific billing field that failed, so the form
// can highlight it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
