package auth

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase wires the Firebase Admin SDK used for ID-token verification
// and for checkout-time account lookup/provisioning.
func InitFirebase(ctx context.Context) error {
	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is not set")
	}

	var opts []option.ClientOption
	if credsFile := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credsFile))
	}

	config := &firebase.Config{ProjectID: projectID}
	app, err := firebase.NewApp(ctx, config, opts...)
	if err != nil {
		return fmt.Errorf("firebase app init: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("firebase auth client: %w", err)
	}

	firebaseApp = app
	firebaseAuth = client
	return nil
}

// FirebaseAuth exposes the auth client to the checkout identity provider.
func FirebaseAuth() *fbauth.Client {
	return firebaseAuth
}
