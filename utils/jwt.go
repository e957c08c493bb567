package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/666-PLAYER-666/hotel-banya/config"
)

// Session tokens carry a single claim: the caller's normalized phone number.
const TokenTTL = time.Hour

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed session token for the given phone number.
func GenerateToken(phone string) (string, error) {
	claims := jwt.MapClaims{
		"phone": phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
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

// ExtractPhoneFromToken extracts the phone claim from a valid token string.
func ExtractPhoneFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	phone, ok := claims["phone"].(string)
	if !ok || phone == "" {
		return "", errors.New("token does not contain a valid 'phone' claim")
	}

	return phone, nil
}
