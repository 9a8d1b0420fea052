package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenAudience is the audience stamped on every back-office access token.
const AccessTokenAudience = "backoffice"

// GenerateJWT signs an HS256 access token for userID that expires after expiryDuration.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		Audience:  jwt.ClaimStrings{AccessTokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT verifies the signature, expiry and audience of an
// access token. Extra parser options (for example jwt.WithIssuer) are
// applied on top.
func ParseAndValidateJWT(tokenString string, secretKey string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	opts = append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(AccessTokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}, opts...)

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
