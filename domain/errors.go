package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Login-flow errors. The messages mirror what the backend-facing frontend
// showed its users, hence the Portuguese.
var (
	ErrTokenMissing = errors.New("token ausente na resposta do login")
	ErrTokenInvalid = errors.New("token inválido")
)

// Errors mapped from backend HTTP statuses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
)

// APIError carries a backend failure that maps to no sentinel error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// ServerMessage extracts the human-readable message from a backend error body.
// The Spring backend answers {"message": ...}; some deployments wrap errors as
// {"error": ...} instead. Returns "" when neither is present.
func ServerMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return ""
}

// FromStatus converts a non-2xx backend response into an error. Well-known
// statuses map to sentinel errors (wrapped with the server message when one
// was provided, so errors.Is still matches); everything else becomes *APIError.
func FromStatus(status int, message string) error {
	var sentinel error
	switch status {
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return &APIError{Status: status, Message: message}
	}
	if message != "" {
		return fmt.Errorf("%w: %s", sentinel, message)
	}
	return sentinel
}
