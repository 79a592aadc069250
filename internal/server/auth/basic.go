package auth

import (
	"encoding/base64"
	"strings"

	"github.com/dkireev/filedepot/internal/shared"
)

// ParseBasicCredentials extracts the email:password pair from an
// "Authorization: Basic <base64>" header value. Any malformed input is
// unauthorized; the caller cannot distinguish why.
func ParseBasicCredentials(header string) (email, password string, err error) {

	scheme, encoded, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", shared.ErrorUnauthorized
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", shared.ErrorUnauthorized
	}

	email, password, found = strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", "", shared.ErrorUnauthorized
	}

	return email, password, nil
}
