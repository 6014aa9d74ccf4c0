package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/buildrun/unihub-client/domain"
	"github.com/buildrun/unihub-client/session"
)

const (
	// SessionExpiredNotice is shown when a 401 forces a logout.
	SessionExpiredNotice = "Your session has expired or you are unauthorized. Please login again."

	defaultLoginPath = "/users/login"
	maxPeekBytes     = 64 << 10
)

// Notifier surfaces user-facing notices. It is the snackbar analog; the host
// application plugs in whatever presentation it has.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notices to the structured log.
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Notify(message string) {
	n.Log.Warn().Msg(message)
}

// ErrorWatch inspects every response. A 401 from any endpoint other than the
// login endpoint itself forces a logout and a session-expired notice; other
// error statuses produce a generic notice carrying the server message when
// one is decodable. Responses to the login endpoint are exempt from the 401
// notice so the login flow can report the failure with more context.
type ErrorWatch struct {
	Base      http.RoundTripper
	Session   *session.Session
	Notifier  Notifier
	LoginPath string
}

func (w *ErrorWatch) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := w.base().RoundTrip(req)
	if err != nil || resp.StatusCode < 400 {
		return resp, err
	}

	isLogin := strings.HasSuffix(req.URL.Path, w.loginPath())
	body := peekBody(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		if isLogin {
			return resp, nil
		}
		w.Session.Logout(req.Context())
		w.notify(SessionExpiredNotice)
		return resp, nil
	}

	message := domain.ServerMessage(body)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	w.notify(fmt.Sprintf("Error: %d - %s", resp.StatusCode, message))
	return resp, nil
}

func (w *ErrorWatch) base() http.RoundTripper {
	if w.Base != nil {
		return w.Base
	}
	return http.DefaultTransport
}

func (w *ErrorWatch) loginPath() string {
	if w.LoginPath != "" {
		return w.LoginPath
	}
	return defaultLoginPath
}

func (w *ErrorWatch) notify(message string) {
	if w.Notifier != nil {
		w.Notifier.Notify(message)
	}
}

// peekBody reads an error response body and puts it back so downstream error
// mapping still sees it. Error bodies are small; the cap is a guardrail.
func peekBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPeekBytes))
	resp.Body.Close()
	if err != nil {
		body = nil
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return body
}
