// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"catlog/config"
	"catlog/internal/domain/service"
)

// jwtVerifier is a concrete implementation of the TokenVerifier interface
// using the JWT standard. Tokens are issued by the external identity
// provider; this side only shares the HMAC secret.
type jwtVerifier struct {
	accessSecret string // Secret key shared with the token issuer.
	issuer       string // Expected iss claim; empty skips the check.
}

// NewJWTVerifier is the constructor for jwtVerifier.
// It takes configuration values to create a new token verifier instance.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		accessSecret: cfg.SecretKey.Access,
		issuer:       cfg.SecretKey.Issuer,
	}, nil
}

// VerifyAccessToken checks the validity of a token string and extracts the
// owner claims from its subject.
func (s *jwtVerifier) VerifyAccessToken(tokenString string) (*service.OwnerClaims, error) {
	var opts []jwt.ParserOption
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, err
	}
	if subject == "" {
		return nil, jwt.ErrTokenRequiredClaimMissing
	}

	return &service.OwnerClaims{OwnerID: subject}, nil
}
