// Package guard implements the navigation gates. Each gate reads the session
// exactly once and answers synchronously: either the navigation may proceed,
// or it is rerouted. Denial is never an error.
package guard

import (
	"net/url"

	"github.com/buildrun/unihub-client/session"
)

const loginRoute = "/login"

// Result is a gate decision. RedirectTo is set only when Allowed is false.
type Result struct {
	Allowed    bool
	RedirectTo string
}

// Authenticated admits any logged-in user. Anonymous navigation is redirected
// to the login page with the original target as returnUrl, so login can
// forward the user back afterwards.
func Authenticated(sess *session.Session, target string) Result {
	if sess.Current() != nil {
		return Result{Allowed: true}
	}
	query := url.Values{"returnUrl": {target}}
	return Result{RedirectTo: loginRoute + "?" + query.Encode()}
}

// Admin admits only administrators. Denial redirects to login even for an
// authenticated non-admin; there is no dedicated forbidden page.
func Admin(sess *session.Session, _ string) Result {
	if sess.IsAdmin() {
		return Result{Allowed: true}
	}
	return Result{RedirectTo: loginRoute}
}
