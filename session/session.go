package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/buildrun/unihub-client/domain"
	"github.com/buildrun/unihub-client/metrics"
)

// loginRoute is where the logout hook is pointed after teardown.
const loginRoute = "/login"

// Session is the single process-wide current-user cell. It is explicitly
// constructed and injected rather than ambient global state. Reads are
// frequent (guards, header UI, bearer transport); writes happen only through
// Set on login and Logout.
//
// Invariant: user and token are present or absent together. Set persists to
// the durable store before publishing in memory, so any observer reacting to
// a published user can assume the store already reflects it.
type Session struct {
	store Store
	log   zerolog.Logger

	mu      sync.Mutex
	current *domain.User
	token   string
	subs    map[int]chan *domain.User
	nextSub int

	onLogout func(redirectTo string)
}

type Option func(*Session)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithLogoutHook installs the navigation side effect of Logout. Callers of
// Logout never redirect themselves; the hook does it for all of them.
func WithLogoutHook(fn func(redirectTo string)) Option {
	return func(s *Session) {
		if fn != nil {
			s.onLogout = fn
		}
	}
}

// New builds the session and restores any persisted state. Restoration is
// purely local and optimistic: the stored token is not verified until the
// next authenticated request fails. An unreadable store fails closed to
// anonymous.
func New(ctx context.Context, store Store, opts ...Option) *Session {
	s := &Session{
		store:    store,
		log:      zerolog.Nop(),
		subs:     make(map[int]chan *domain.User),
		onLogout: func(string) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	user, token, err := store.Load(ctx)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Msg("discarding unreadable stored session")
		_ = store.Clear(ctx)
		metrics.SessionRestoresTotal.WithLabelValues("corrupt").Inc()
	case user != nil && token != "":
		s.current = user
		s.token = token
		s.log.Debug().Str("username", user.Username).Msg("session restored")
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	default:
		metrics.SessionRestoresTotal.WithLabelValues("anonymous").Inc()
	}
	return s
}

// Current returns the logged-in user, or nil when anonymous.
func (s *Session) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Token returns the bearer token, or "" when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAdmin reports whether the current user is an administrator.
func (s *Session) IsAdmin() bool {
	return s.Current().IsAdmin()
}

// Set installs a new session. The durable store is written first; when that
// fails nothing is published and the session keeps its previous state.
func (s *Session) Set(ctx context.Context, user *domain.User, token string) error {
	if user == nil || token == "" {
		return fmt.Errorf("session: user and token must be set together")
	}
	if err := s.store.Save(ctx, user, token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.token = token
	s.publishLocked(user)
	s.mu.Unlock()
	return nil
}

// Logout clears the store, publishes anonymous, and fires the logout hook.
// Idempotent: tearing down an already-anonymous session only repeats the
// harmless redirect.
func (s *Session) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("clearing stored session failed")
	}

	s.mu.Lock()
	wasAnonymous := s.current == nil
	s.current = nil
	s.token = ""
	s.publishLocked(nil)
	s.mu.Unlock()

	if !wasAnonymous {
		metrics.LogoutsTotal.Inc()
		s.log.Info().Msg("session ended")
	}
	s.onLogout(loginRoute)
}

// Subscribe returns a stream of the current user. The present value is
// delivered immediately; afterwards the channel carries one value per
// login/logout, conflated to the latest when the subscriber lags. The cancel
// function releases the subscription.
func (s *Session) Subscribe() (<-chan *domain.User, func()) {
	ch := make(chan *domain.User, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.current
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// publishLocked fans out a new value. Callers hold s.mu, so draining a stale
// value and refilling cannot race another publisher.
func (s *Session) publishLocked(user *domain.User) {
	for _, ch := range s.subs {
		select {
		case ch <- user:
			continue
		default:
		}
		select {
		case <-ch: // drop the stale value; only the latest matters
		default:
		}
		ch <- user
	}
}
