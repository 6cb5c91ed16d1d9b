package auth

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AuthenticatedRole is both the audience and the role Supabase gives a
// signed-in user's access token. Anon and service-role keys carry other roles.
const AuthenticatedRole = "authenticated"

// Claims are the fields Supabase puts in an access token.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	AAL       string `json:"aal"`
	jwt.RegisteredClaims
}

// Verifier validates Supabase access tokens against one project key.
type Verifier struct {
	key    any
	parser *jwt.Parser
}

// NewVerifier takes the project's JWT secret, or a PEM public key when the
// project signs with asymmetric keys. The accepted algorithms follow the key
// type, so a token can never pick its own verification method.
func NewVerifier(keyMaterial string) (*Verifier, error) {
	var (
		key     any
		methods []string
	)
	if strings.Contains(keyMaterial, "-----BEGIN") {
		pub, err := parsePKIX(keyMaterial)
		if err != nil {
			return nil, err
		}
		switch pub := pub.(type) {
		case *rsa.PublicKey:
			key, methods = pub, []string{"RS256", "RS384", "RS512"}
		case *ecdsa.PublicKey:
			key, methods = pub, []string{"ES256", "ES384", "ES512"}
		default:
			return nil, fmt.Errorf("unsupported public key type %T", pub)
		}
	} else {
		if keyMaterial == "" {
			return nil, errors.New("JWT secret is empty")
		}
		key, methods = []byte(keyMaterial), []string{"HS256", "HS384", "HS512"}
	}

	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods(methods),
			jwt.WithAudience(AuthenticatedRole),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

func parsePKIX(pemKey string) (any, error) {
	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing public key")
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return pub, nil
}

// Verify checks signature, expiry and audience, then requires a signed-in
// user: a subject and the authenticated role.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	if claims.Role != AuthenticatedRole {
		return nil, fmt.Errorf("token role %q is not a signed-in user", claims.Role)
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
