package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// SessionTokenTTL is how long an issued session token stays valid
const SessionTokenTTL = time.Hour * 24 * 30

var ErrInvalidToken = errors.New("invalid or expired session token")

// SessionClaims is the principal identity carried by a session token
type SessionClaims struct {
	UserID uint
	Email  string
}

// MakeSessionToken signs a time-bounded HS256 token carrying the
// principal's id and email
func MakeSessionToken(userID uint, email string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(SessionTokenTTL).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseSessionToken verifies the signature and expiry of a session token
// and returns the claims it carries. Any failure maps to ErrInvalidToken
func ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	expRaw, ok := claims["exp"]
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := expRaw.(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	if time.Now().Unix() >= int64(exp) {
		return nil, ErrInvalidToken
	}

	return &SessionClaims{
		UserID: uint(id),
		Email:  email,
	}, nil
}
