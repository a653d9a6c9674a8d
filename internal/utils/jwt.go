package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-social-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token carries the "user_id" and "name" claims plus the registered
// claims:
//   - Issuer    (iss): set only when issuer is non-empty
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if tokenDuration is not positive, signKey is empty or
// userID is the nil UUID.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("", userID, "Ann", 365*24*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID uuid.UUID, name string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == uuid.Nil || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		UserID: userID.String(),
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Name: name}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check, only when tokenIssuer is non-empty
//   - "user_id" claim presence and conversion to uuid.UUID
//
// Returns the parsed token with UserID and Name populated, or an error if
// any check fails.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.ParseUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting user id from token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Name: claims.Name}, nil
}
