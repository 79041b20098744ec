package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Claims carried by the session cookie token
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// SessionTTL is how long a session token stays valid
const SessionTTL = 24 * time.Hour

// GenerateSessionToken creates a signed session token for a given user ID
func GenerateSessionToken(userID uint, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		UserID: userID, // Custom claim for user ID
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)), // Token expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),                 // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseSessionToken parses and validates a session token string
func ParseSessionToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
