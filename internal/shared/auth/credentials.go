package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrMalformedHeader is returned when an Authorization header is missing,
// is not Basic, or does not decode to a username:password pair.
var ErrMalformedHeader = errors.New("malformed authorization header")

// Credentials is what a transport credential resolves to: the username and
// the one-way digest of the secret. The plaintext password never leaves
// this package.
type Credentials struct {
	Username       string
	PasswordDigest string
}

// HashSecret produces the hex-encoded SHA-256 digest of a secret. Stored
// password hashes and decoded credentials both go through this function, so
// authentication reduces to an exact digest comparison.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// DecodeBasicHeader parses an "Authorization: Basic ..." header value and
// hashes the secret immediately.
func DecodeBasicHeader(header string) (Credentials, error) {
	scheme, payload, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return Credentials{}, ErrMalformedHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Credentials{}, ErrMalformedHeader
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found || username == "" {
		return Credentials{}, ErrMalformedHeader
	}

	return Credentials{
		Username:       username,
		PasswordDigest: HashSecret(password),
	}, nil
}
