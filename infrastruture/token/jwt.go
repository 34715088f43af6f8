// Package token implements the JWT-backed tokenizer.
package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	errInvalidToken = errors.New("invalid token")
	errWrongIssuer  = errors.New("token issued by another party")
	errWrongSigning = errors.New("unexpected signing method")
)

// JwtService signs and validates HMAC JWTs carrying arbitrary claims.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT for the given claims. The expiry and issuer claims
// are set by the service; caller claims with the same keys are overwritten.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["exp"] = time.Now().UTC().Add(expTime).Unix()
	jwtClaims["iss"] = s.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning the claims if the signature,
// expiry and issuer all check out.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errInvalidToken
	}

	if issuer, _ := claims["iss"].(string); issuer != s.issuer {
		return nil, errWrongIssuer
	}

	return claims, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errWrongSigning
	}
	return []byte(s.secretKey), nil
}
