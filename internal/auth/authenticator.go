// Package auth establishes who the acting party is. Only real users
// authenticate; virtual contacts never act on their own.
package auth

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Authenticator registers and verifies real users.
type Authenticator interface {
	// Register creates a user with the given email and credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user whose credential matches.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential before it is stored.
	ValidateCredential(credential string) error
}
