package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/brilliantafrica/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

var ErrMalformedClaims = errors.New("malformed token claims")

// Claims is the typed view of an access token payload.
type Claims struct {
	UserID    int64
	Email     string
	Role      user.Role
	ExpiresAt int64
}

type Service interface {
	GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error)
	ParseAccessToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	issuedAt := j.now()
	expiresAt = issuedAt.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"id":    userID,
		"email": email,
		"role":  string(role),
		"type":  tokenTypeAccess,
		"iat":   issuedAt.Unix(),
		"exp":   expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func (j *JWTService) ParseAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return Claims{}, err
	}
	return ClaimsFromMap(claims)
}

// ClaimsFromMap converts the raw claims produced by jwtauth into Claims.
// Tokens without the access type are rejected.
func ClaimsFromMap(m map[string]interface{}) (Claims, error) {
	if t, ok := m["type"].(string); !ok || t != tokenTypeAccess {
		return Claims{}, ErrMalformedClaims
	}

	id, ok := toInt64(m["id"])
	if !ok {
		return Claims{}, ErrMalformedClaims
	}
	email, _ := m["email"].(string)
	role, ok := m["role"].(string)
	if !ok {
		return Claims{}, ErrMalformedClaims
	}

	c := Claims{UserID: id, Email: email, Role: user.Role(role)}
	switch exp := m["exp"].(type) {
	case time.Time:
		c.ExpiresAt = exp.Unix()
	default:
		c.ExpiresAt, _ = toInt64(exp)
	}
	return c, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
