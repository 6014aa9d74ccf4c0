// Package transport holds the cross-cutting HTTP round-trippers: bearer-token
// attachment, 401 session teardown with user notices, and request metrics.
package transport

import "net/http"

// TokenSource yields the bearer token attached to outgoing requests.
// *session.Session satisfies it.
type TokenSource interface {
	Token() string
}

// Bearer decorates every outgoing request with the session's Authorization
// header. Anonymous requests pass through untouched.
type Bearer struct {
	Base   http.RoundTripper
	Tokens TokenSource
}

func (b *Bearer) RoundTrip(req *http.Request) (*http.Response, error) {
	token := b.Tokens.Token()
	if token == "" {
		return b.base().RoundTrip(req)
	}

	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return b.base().RoundTrip(clone)
}

func (b *Bearer) base() http.RoundTripper {
	if b.Base != nil {
		return b.Base
	}
	return http.DefaultTransport
}
