package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"records-service/internal/domain/account"
	"records-service/internal/rbac"
)

// Verification failure taxonomy. The middleware collapses all of these
// into a 403, but callers (and tests) can tell them apart.
var (
	ErrTokenMalformed   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
)

type Claims struct {
	AccountID       int64      `json:"account_id"`
	Username        string     `json:"username"`
	Role            rbac.Role  `json:"role"`
	PermissionLevel rbac.Level `json:"permission_level"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies session tokens with a process-wide
// secret. The secret is loaded once at startup and never rotated.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a token for the account. The permission level is always
// embedded so the authorize stage never consults storage.
func (s *JWTService) Issue(acc *account.Account) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID:       acc.ID,
		Username:        acc.Username,
		Role:            acc.Role,
		PermissionLevel: acc.PermissionLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning the embedded claims
// unchanged. Claims are trusted as-is for the request's lifetime; a
// permission change takes effect at the next login.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(msgUnexpectedSigningMethod, token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
