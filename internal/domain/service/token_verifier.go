package service

// OwnerClaims carries the identity extracted from a verified access token.
type OwnerClaims struct {
	OwnerID string // Token subject. Opaque to this system; issued elsewhere.
}

// TokenVerifier defines the interface for verifying owner access tokens.
// Token issuance and account management live with the identity provider;
// this system only checks signatures and extracts the subject.
type TokenVerifier interface {
	// VerifyAccessToken checks the validity of a token string and returns
	// the claims of its owner.
	VerifyAccessToken(tokenString string) (*OwnerClaims, error)
}
