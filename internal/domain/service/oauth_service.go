package service

import (
	"context"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (Google's 'sub' claim)
	Email         string // User's email address
	EmailVerified bool   // Whether the email is verified by the provider
	GivenName     string
	FamilyName    string
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
