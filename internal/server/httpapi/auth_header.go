package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var (
	errMissingAuthorization = errors.New("missing authorization header")
	errBadAuthorization     = errors.New("bad auth header")
)

const bearerPrefix = "Bearer "

// bearerTokenFromHeader extracts the raw JWT from an Authorization header.
// The scheme must be exactly "Bearer" and the token must look like a JWT
// (two dots); deeper validation happens during signature verification.
func bearerTokenFromHeader(header http.Header) (string, error) {
	raw := strings.TrimSpace(header.Get(echo.HeaderAuthorization))
	if raw == "" {
		return "", errMissingAuthorization
	}
	token, ok := strings.CutPrefix(raw, bearerPrefix)
	if !ok || token == "" {
		return "", errBadAuthorization
	}
	if strings.Count(token, ".") != 2 {
		return "", errBadAuthorization
	}
	return token, nil
}
