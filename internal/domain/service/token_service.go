package service

import "time"

// AdminClaims are the claims carried by an admin session token. AuthTime is
// the moment the password was last proven and drives the re-authentication
// freshness check on credential changes.
type AdminClaims struct {
	Email    string
	AuthTime time.Time
}

// TokenService defines the interface for generating and validating admin
// session tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// GenerateAdminToken creates a session token for the given admin email
	// with the given authentication time.
	GenerateAdminToken(email string, authTime time.Time) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*AdminClaims, error)
}
