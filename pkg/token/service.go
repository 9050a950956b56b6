package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tendant/simple-org/pkg/identity"
	"github.com/tendant/simple-org/pkg/role"
)

const (
	AccessTokenName = "access_token"

	DefaultAccessTokenExpiry = 15 * time.Minute

	// RoleClaim is the JWT claim carrying the resolved role.
	RoleClaim = "role"
	// EmailClaim is the JWT claim carrying the identity email.
	EmailClaim = "email"
)

// TokenValue pairs a signed token with its expiry
type TokenValue struct {
	Token  string
	Expiry time.Time
}

// Claims struct for JWT claims
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Service mints and parses access tokens carrying the resolved role
type Service struct {
	Secret            string
	Issuer            string
	AccessTokenExpiry time.Duration
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithAccessTokenExpiry sets the access token expiry duration
func WithAccessTokenExpiry(expiry time.Duration) ServiceOption {
	return func(s *Service) {
		s.AccessTokenExpiry = expiry
	}
}

// NewService creates a new token service
func NewService(secret, issuer string, opts ...ServiceOption) *Service {
	s := &Service{
		Secret:            secret,
		Issuer:            issuer,
		AccessTokenExpiry: DefaultAccessTokenExpiry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateAccessToken creates a signed access token for the identity
// with its resolved role as a claim.
func (s *Service) GenerateAccessToken(ident identity.Identity, userRole role.Role) (TokenValue, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: ident.Email,
		Role:  userRole.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Minute)),
			Issuer:    s.Issuer,
			Subject:   ident.ID.String(),
			ID:        uuid.New().String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(s.Secret))
	if err != nil {
		return TokenValue{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return TokenValue{Token: signed, Expiry: claims.ExpiresAt.Time}, nil
}

// ParseAccessToken parses and validates a signed token
func (s *Service) ParseAccessToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
