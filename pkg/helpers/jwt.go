package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceTokenIssuer is the iss claim of every token minted by this service.
const ServiceTokenIssuer = "edo-marketplace-admin"

// TokenSigner mints short-lived HS256 tokens that authenticate the
// dashboard server to the marketplace REST API.
type TokenSigner struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &TokenSigner{Secret: []byte(secret), TTL: ttl}
}

type ServiceClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Sign issues a token for subject with the admin read scope.
func (s *TokenSigner) Sign(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.TTL)
	claims := &ServiceClaims{
		Scope: "admin:read",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ServiceTokenIssuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	str, err := t.SignedString(s.Secret)
	return str, exp, err
}

// Parse validates a token produced by Sign. The marketplace REST API performs
// the same check on the Bearer token; Parse is its reference implementation.
func (s *TokenSigner) Parse(tokenStr string) (*ServiceClaims, error) {
	claims := &ServiceClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	}, jwt.WithIssuer(ServiceTokenIssuer))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
