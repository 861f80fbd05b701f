package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/danmu-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken] for values
// that are not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// BearerHeaderValue formats token as an Authorization header value.
func BearerHeaderValue(token string) string {
	return "Bearer " + token
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseClaimsUnverified decodes the claim set of a JWT bearer token without
// checking its signature.
//
// The client holds no signing key, so the result is informational only: it
// tells the user who the token was issued to and when it expires. Tokens that
// are not JWTs yield an error.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, fmt.Errorf("error occurred parsing token claims: %w", err)
	}

	return claims, nil
}
