package utils

import (
	"errors"
	"time"

	"statutesync/config"
	sessionRepo "statutesync/database/repository/session"
	"statutesync/models"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "statutesync-dev"
	}
	return []byte(secret)
}

// SessionTokenIssuer signs the profile into an HS256 token. The token is stored with the session and
// compared verbatim on each request; the claims are informational.
func SessionTokenIssuer() sessionRepo.TokenIssuer {
	return func(profile models.UserProfile, issuedAt time.Time) (string, error) {
		claims := jwt.MapClaims{
			"sub":  profile.Email,
			"role": string(profile.Role),
			"iat":  issuedAt.Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		return token.SignedString(secretKey())
	}
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractSubject returns the email a valid session token was issued for.
func ExtractSubject(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
