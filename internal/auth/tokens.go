package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// IssueTokens signs a short-lived access token and a long-lived refresh
// token for the teacher identified by email.
func IssueTokens(secret []byte, email string) (access, refresh string, err error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(accessTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(secret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(refreshTTL).Unix(),
		"type":  "refresh",
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secret)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// parseToken verifies an HMAC-signed token and returns its email claim
// and whether it is a refresh token.
func parseToken(secret []byte, tokenStr string) (email string, isRefresh bool, err error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", false, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, ErrInvalidToken
	}
	email, ok = claims["email"].(string)
	if !ok || email == "" {
		return "", false, ErrInvalidToken
	}
	return email, claims["type"] == "refresh", nil
}
