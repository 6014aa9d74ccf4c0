package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/buildrun/unihub-client/domain"
)

// Interpreter turns a successful login response body into a user and a token.
// The two observed backend revisions each get an implementation; Auto sniffs
// between them on response content.
type Interpreter interface {
	Interpret(body []byte) (*domain.User, string, error)
}

// structuredResponse is the newer backend's explicit login envelope.
type structuredResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token"`
}

// Structured trusts the response fields directly. The role comes from the
// first roles entry; anything but an exact ROLE_ADMIN is an ordinary user.
type Structured struct{}

func (Structured) Interpret(body []byte) (*domain.User, string, error) {
	var resp structuredResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("decode login response: %w", err)
	}

	token := strings.TrimSpace(resp.Token)
	if token == "" {
		return nil, "", domain.ErrTokenMissing
	}

	user := &domain.User{
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Role:     domain.RoleFromList(resp.Roles),
	}
	return user, token, nil
}

// Opaque handles backends that answer with the bare token (text, quoted
// string, or a {token} wrapper): extract the token, then derive the user from
// its claims.
type Opaque struct{}

func (Opaque) Interpret(body []byte) (*domain.User, string, error) {
	token, err := ExtractToken(body)
	if err != nil {
		return nil, "", err
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return nil, "", err
	}
	return UserFromClaims(claims), token, nil
}

// Auto picks Structured when the body looks like the newer backend's envelope
// (a JSON object carrying a roles array) and falls back to Opaque otherwise.
type Auto struct{}

func (Auto) Interpret(body []byte) (*domain.User, string, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &probe); err == nil {
		if raw, ok := probe["roles"]; ok {
			var roles []string
			if json.Unmarshal(raw, &roles) == nil {
				return Structured{}.Interpret(body)
			}
		}
	}
	return Opaque{}.Interpret(body)
}
