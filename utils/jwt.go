package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "podio-dev-secret"
	}
	return secret
}

// GenerateSessionToken creates a signed JWT carrying the flow session ID and
// the event the session was opened for. The token expires after the given
// duration, matching the session TTL in Redis.
func GenerateSessionToken(sessionID string, eventID int, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      sessionID,
		"event_id": eventID,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateSessionToken parses and validates a token string and returns the token if valid.
func ValidateSessionToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// SessionFromToken extracts the session ID and event ID from a valid token string.
func SessionFromToken(tokenString string) (string, int, error) {
	token, err := ValidateSessionToken(tokenString)
	if err != nil {
		return "", 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", 0, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", 0, errors.New("token does not contain a valid 'sub' claim")
	}

	eventID, ok := claims["event_id"].(float64)
	if !ok {
		return "", 0, errors.New("token does not contain a valid 'event_id' claim")
	}

	return sub, int(eventID), nil
}
