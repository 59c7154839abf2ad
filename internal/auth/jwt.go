package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

// Claims are the bearer token claims. CustomerID falls back to the subject.
type Claims struct {
	jwt.RegisteredClaims
	CustomerID string `json:"customerId,omitempty"`
}

// JWTAuthenticator validates HS256 bearer tokens.
type JWTAuthenticator struct {
	secret []byte
	now    func() time.Time
}

func NewJWTAuthenticator(secret string) (*JWTAuthenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTAuthenticator{secret: []byte(secret), now: time.Now}, nil
}

// IssueToken signs a token for customerID valid for ttl (24h when ttl <= 0).
func (a *JWTAuthenticator) IssueToken(customerID string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(customerID) == "" {
		return "", fmt.Errorf("customer id is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, credentials Credentials) (Caller, bool, error) {
	tokenString := strings.TrimSpace(credentials.BearerToken)
	if tokenString == "" {
		return Caller{}, false, nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return Caller{}, false, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return Caller{}, false, fmt.Errorf("%w: token is not valid", ErrInvalidCredentials)
	}

	customerID := strings.TrimSpace(claims.CustomerID)
	if customerID == "" {
		customerID = strings.TrimSpace(claims.Subject)
	}
	if customerID == "" {
		return Caller{}, false, fmt.Errorf("%w: token has no customer id", ErrInvalidCredentials)
	}

	return Caller{CustomerID: customerID}, true, nil
}
