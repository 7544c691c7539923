package checkoutControllers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	fbauth "firebase.google.com/go/auth"
)

// ProvisionPolicy decides what happens when checkout meets a billing email
// with no account behind it.
type ProvisionPolicy int

const (
	// ProvisionSilent creates an account under the billing email with a
	// random credential and emails a password-setup link. The storefront's
	// default: guest checkout never dead-ends, at the cost of creating an
	// account the user did not explicitly ask for.
	ProvisionSilent ProvisionPolicy = iota
	// ProvisionBlock refuses and asks the user to log in or sign up first.
	ProvisionBlock
	// ProvisionPrompt refuses but tells the UI to offer signup instead of login.
	ProvisionPrompt
)

var ErrIdentityNotFound = errors.New("identity not found")

type Identity struct {
	UID   string
	Email string
}

// IdentityProvider is the slice of the identity service checkout needs.
type IdentityProvider interface {
	// LookupByEmail returns ErrIdentityNotFound when no account exists.
	LookupByEmail(ctx context.Context, email string) (Identity, error)
	// Provision creates an account with a random credential and returns a
	// password-setup link for the notification email.
	Provision(ctx context.Context, email string) (Identity, string, error)
}

type firebaseIdentity struct {
	client *fbauth.Client
}

func NewFirebaseIdentity(client *fbauth.Client) IdentityProvider {
	return &firebaseIdentity{client: client}
}

func (f *firebaseIdentity) LookupByEmail(ctx context.Context, email string) (Identity, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return Identity{}, ErrIdentityNotFound
		}
		return Identity{}, fmt.Errorf("identity lookup: %w", err)
	}
	return Identity{UID: user.UID, Email: user.Email}, nil
}

func (f *firebaseIdentity) Provision(ctx context.Context, email string) (Identity, string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(randomCredential()).
		EmailVerified(false)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return Identity{}, "", fmt.Errorf("identity provisioning: %w", err)
	}

	link, err := f.client.PasswordResetLink(ctx, email)
	if err != nil {
		// The account exists either way; the link can be re-requested from
		// the login screen.
		return Identity{UID: user.UID, Email: email}, "", nil
	}
	return Identity{UID: user.UID, Email: email}, link, nil
}

func randomCredential() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return base64.RawURLEncoding.EncodeToString([]byte("fallback-credential"))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
