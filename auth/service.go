package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildrun/unihub-client/domain"
	"github.com/buildrun/unihub-client/metrics"
	"github.com/buildrun/unihub-client/pkg/validate"
	"github.com/buildrun/unihub-client/session"
)

const maxResponseBytes = 1 << 20

// Service implements the login and register flows. Login is single-shot and
// all-or-nothing: on any failure the session keeps its previous state and the
// error is returned for the caller to display.
type Service struct {
	http         *http.Client
	baseURL      string
	loginPath    string
	registerPath string
	session      *session.Session
	interp       Interpreter
	validator    *validate.Validator
	log          zerolog.Logger
}

type Option func(*Service)

// WithInterpreter overrides the response interpretation strategy. The default
// sniffs between the two observed backend revisions.
func WithInterpreter(interp Interpreter) Option {
	return func(s *Service) {
		if interp != nil {
			s.interp = interp
		}
	}
}

// WithPaths overrides the auth endpoints (/users/* by default, /auth/* on the
// other observed backend revision).
func WithPaths(login, register string) Option {
	return func(s *Service) {
		if login != "" {
			s.loginPath = login
		}
		if register != "" {
			s.registerPath = register
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(httpClient *http.Client, baseURL string, sess *session.Session, opts ...Option) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	s := &Service{
		http:         httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		loginPath:    "/users/login",
		registerPath: "/users/register",
		session:      sess,
		interp:       Auto{},
		validator:    validate.New(),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login exchanges credentials for a session. On success the new session is
// persisted and published before the user is returned; a 401 surfaces as
// ErrInvalidCredentials, an unusable token as ErrTokenMissing/ErrTokenInvalid.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	if err := s.validator.Struct(creds); err != nil {
		return nil, err
	}

	body, status, err := s.post(ctx, s.loginPath, creds)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("transport").Inc()
		return nil, err
	}
	switch {
	case status == http.StatusUnauthorized:
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	case status >= 400:
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, domain.FromStatus(status, domain.ServerMessage(body))
	}

	user, token, err := s.interp.Interpret(body)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("malformed").Inc()
		return nil, err
	}

	if err := s.session.Set(ctx, user, token); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("login succeeded")
	return user, nil
}

// Register creates an account. No session side effects; the caller is
// expected to proceed to login on success.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.MessageResponse, error) {
	if err := s.validator.Struct(reg); err != nil {
		return domain.MessageResponse{}, err
	}

	body, status, err := s.post(ctx, s.registerPath, reg)
	if err != nil {
		return domain.MessageResponse{}, err
	}
	if status >= 400 {
		return domain.MessageResponse{}, domain.FromStatus(status, domain.ServerMessage(body))
	}

	var out domain.MessageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domain.MessageResponse{}, fmt.Errorf("decode register response: %w", err)
	}
	return out, nil
}

// post sends a JSON payload and returns the raw response body and status.
// The body is returned raw because the login endpoint may answer text/plain.
func (s *Service) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
