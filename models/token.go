package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleUser is the only role the service issues.
// Every successfully authenticated caller carries it.
const RoleUser = "user"

// TokenClaims is the claim set embedded into every issued JWT.
//
// It extends [jwt.RegisteredClaims] with the service-specific "email" and
// "role" claims. The registered "sub" claim duplicates the email so that
// standard claim accessors keep working.
type TokenClaims struct {
	// Email is the normalized (lowercase) address of the authenticated user.
	Email string `json:"email"`

	// Role is the authorization role granted to the caller.
	// Always [RoleUser] for tokens issued by this service.
	Role string `json:"role"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims is the full claim set carried by the token.
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
