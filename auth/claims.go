// Package auth exchanges credentials for a session against the unihub
// backend. Two backend revisions answer the login request differently — a
// structured JSON envelope or an opaque token — and both are supported
// through pluggable response interpreters.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/buildrun/unihub-client/domain"
)

// ExtractToken pulls the bearer token out of an opaque login response body.
// Precedence: a JSON object yields its token/accessToken field; a JSON-quoted
// string yields its contents; anything else is the token verbatim, trimmed.
// A body with no extractable token fails with ErrTokenMissing.
func ExtractToken(body []byte) (string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "", domain.ErrTokenMissing
	}

	switch {
	case strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"):
		var envelope struct {
			Token       string `json:"token"`
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
			// Not JSON after all; the backend sent the token verbatim.
			return trimmed, nil
		}
		if t := strings.TrimSpace(envelope.Token); t != "" {
			return t, nil
		}
		if t := strings.TrimSpace(envelope.AccessToken); t != "" {
			return t, nil
		}
		return "", domain.ErrTokenMissing

	case len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`):
		var quoted string
		if err := json.Unmarshal([]byte(trimmed), &quoted); err != nil {
			return trimmed, nil
		}
		quoted = strings.TrimSpace(quoted)
		if quoted == "" {
			return "", domain.ErrTokenMissing
		}
		return quoted, nil
	}

	return trimmed, nil
}

// DecodeClaims decodes the payload segment of a JWT without verifying the
// signature. Verification is the backend's job; the client only derives a
// display identity from the claims. A token with fewer than two dot-separated
// segments fails with ErrTokenInvalid.
func DecodeClaims(token string) (jwt.MapClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return nil, domain.ErrTokenInvalid
	}

	// base64url to standard base64, padded to a multiple of four.
	seg := strings.NewReplacer("-", "+", "_", "/").Replace(parts[1])
	if rem := len(seg) % 4; rem != 0 {
		seg += strings.Repeat("=", 4-rem)
	}

	payload, err := base64.StdEncoding.DecodeString(seg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	return claims, nil
}

// UserFromClaims maps a decoded payload into a User, tolerating the older
// token format's missing fields: userId defaults to 0, the username falls
// back through email and sub, and an absent role means ordinary user.
func UserFromClaims(claims jwt.MapClaims) *domain.User {
	user := &domain.User{
		ID:    claimInt64(claims, "userId"),
		Email: claimString(claims, "email"),
	}
	for _, key := range []string{"username", "email", "sub"} {
		if v := claimString(claims, key); v != "" {
			user.Username = v
			break
		}
	}
	user.Role = domain.RoleFromClaim(claimString(claims, "role"))
	return user
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func claimInt64(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}
