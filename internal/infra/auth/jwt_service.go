package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"folio/config"
	"folio/internal/domain/service"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// GenerateAdminToken creates a session token carrying the admin email and the
// moment the password was proven (auth_time).
func (s *jwtService) GenerateAdminToken(email string, authTime time.Time) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       email,                 // Subject (who the token is for)
		"iat":       now.Unix(),            // Issued At
		"exp":       now.Add(s.ttl).Unix(), // Expiration Time
		"auth_time": authTime.Unix(),       // When the password was last proven
		"role":      "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	email, _ := claims["sub"].(string)
	if email == "" {
		return nil, errors.New("subject missing from token")
	}

	authTimeUnix, ok := claims["auth_time"].(float64)
	if !ok {
		return nil, errors.New("auth_time missing from token")
	}

	return &service.AdminClaims{
		Email:    email,
		AuthTime: time.Unix(int64(authTimeUnix), 0),
	}, nil
}
