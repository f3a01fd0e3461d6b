package session

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"campusmarket/internal/models"
)

// Verifier checks an identity-provider token and returns the user behind
// it.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (models.User, error)
}

// FirebaseVerifier validates Firebase ID tokens minted by the sign-in
// popup on the landing page.
type FirebaseVerifier struct {
	auth *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseVerifier{auth: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (models.User, error) {
	token, err := v.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.User{}, fmt.Errorf("verify id token: %w", err)
	}
	user := models.User{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		user.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	return user, nil
}
