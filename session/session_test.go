package session

import (
	"context"
	"errors"
	"testing"

	"github.com/buildrun/unihub-client/domain"
)

// recordStore tracks call order so tests can assert the persist-then-publish
// ordering guarantee.
type recordStore struct {
	user    *domain.User
	token   string
	saved   bool
	cleared int

	loadUser  *domain.User
	loadToken string
	loadErr   error
	saveErr   error
}

func (r *recordStore) Save(_ context.Context, user *domain.User, token string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.user, r.token, r.saved = user, token, true
	return nil
}

func (r *recordStore) Load(_ context.Context) (*domain.User, string, error) {
	return r.loadUser, r.loadToken, r.loadErr
}

func (r *recordStore) Clear(_ context.Context) error {
	r.user, r.token = nil, ""
	r.cleared++
	return nil
}

var ana = &domain.User{ID: 1, Username: "ana", Email: "a@x.com", Role: domain.RoleAdmin}

func TestSession_RestoresFromStore(t *testing.T) {
	store := &recordStore{loadUser: ana, loadToken: "t1"}
	s := New(context.Background(), store)

	if got := s.Current(); got == nil || got.Username != "ana" {
		t.Fatalf("expected restored user, got %+v", got)
	}
	if s.Token() != "t1" {
		t.Fatalf("expected restored token, got %q", s.Token())
	}
	if !s.IsAdmin() {
		t.Fatalf("restored admin not recognised")
	}
}

func TestSession_CorruptStoreFailsClosed(t *testing.T) {
	store := &recordStore{loadErr: errors.New("decode session: boom")}
	s := New(context.Background(), store)

	if s.Current() != nil || s.Token() != "" {
		t.Fatalf("corrupt store must yield anonymous session")
	}
	if store.cleared == 0 {
		t.Fatalf("corrupt store should be cleared")
	}
}

func TestSession_SetPersistsBeforePublishing(t *testing.T) {
	store := &recordStore{}
	s := New(context.Background(), store)

	ch, cancel := s.Subscribe()
	defer cancel()
	if got := <-ch; got != nil {
		t.Fatalf("replay of fresh session should be nil, got %+v", got)
	}

	if err := s.Set(context.Background(), ana, "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := <-ch
	if got == nil || got.Username != "ana" {
		t.Fatalf("published user %+v", got)
	}
	// By the time the user is observable the store already holds the session.
	if !store.saved || store.token != "t1" {
		t.Fatalf("store not written before publish: %+v", store)
	}
}

func TestSession_SetRejectsHalfSessions(t *testing.T) {
	s := New(context.Background(), &recordStore{})
	if err := s.Set(context.Background(), nil, "t1"); err == nil {
		t.Fatalf("expected error for nil user")
	}
	if err := s.Set(context.Background(), ana, ""); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestSession_SetSaveFailureKeepsState(t *testing.T) {
	store := &recordStore{saveErr: errors.New("disk full")}
	s := New(context.Background(), store)

	if err := s.Set(context.Background(), ana, "t1"); err == nil {
		t.Fatalf("expected Save failure to propagate")
	}
	if s.Current() != nil || s.Token() != "" {
		t.Fatalf("failed Set must not change session state")
	}
}

func TestSession_SubscribeReplaysLatest(t *testing.T) {
	store := &recordStore{}
	s := New(context.Background(), store)
	if err := s.Set(context.Background(), ana, "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	ch, cancel := s.Subscribe()
	defer cancel()
	if got := <-ch; got == nil || got.Username != "ana" {
		t.Fatalf("late subscriber should see current user, got %+v", got)
	}
}

func TestSession_SlowSubscriberGetsLatestOnly(t *testing.T) {
	store := &recordStore{}
	s := New(context.Background(), store)

	ch, cancel := s.Subscribe()
	defer cancel()
	// Replay value left unread on purpose; both updates land before we read.
	bruno := &domain.User{ID: 7, Username: "bruno", Role: domain.RoleUser}
	if err := s.Set(context.Background(), ana, "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(context.Background(), bruno, "t2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got := <-ch; got == nil || got.Username != "bruno" {
		t.Fatalf("expected latest value, got %+v", got)
	}
}

func TestSession_LogoutClearsAndRedirects(t *testing.T) {
	store := &recordStore{loadUser: ana, loadToken: "t1"}
	var redirects []string
	s := New(context.Background(), store, WithLogoutHook(func(to string) {
		redirects = append(redirects, to)
	}))

	s.Logout(context.Background())
	if s.Current() != nil || s.Token() != "" {
		t.Fatalf("session not anonymous after logout")
	}
	if store.cleared != 1 {
		t.Fatalf("store cleared %d times, want 1", store.cleared)
	}

	// Idempotent: a second logout only repeats the harmless redirect.
	s.Logout(context.Background())
	if len(redirects) != 2 || redirects[0] != "/login" || redirects[1] != "/login" {
		t.Fatalf("unexpected redirects %v", redirects)
	}
}

func TestSession_CancelStopsDelivery(t *testing.T) {
	store := &recordStore{}
	s := New(context.Background(), store)

	ch, cancel := s.Subscribe()
	<-ch
	cancel()

	if err := s.Set(context.Background(), ana, "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, ok := <-ch; ok && got != nil {
		t.Fatalf("cancelled subscriber received %+v", got)
	}
}
