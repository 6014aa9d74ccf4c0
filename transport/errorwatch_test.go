package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/buildrun/unihub-client/domain"
	"github.com/buildrun/unihub-client/session"
)

type memNotifier struct {
	notices []string
}

func (n *memNotifier) Notify(message string) {
	n.notices = append(n.notices, message)
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	sess := session.New(context.Background(), store)
	user := &domain.User{ID: 1, Username: "ana", Role: domain.RoleUser}
	if err := sess.Set(context.Background(), user, "t1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return sess
}

func TestErrorWatch_UnauthorizedLogsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := newSession(t)
	notifier := &memNotifier{}
	client := &http.Client{Transport: &ErrorWatch{Session: sess, Notifier: notifier}}

	resp, err := client.Get(srv.URL + "/api/professores")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if sess.Current() != nil || sess.Token() != "" {
		t.Fatalf("401 must tear the session down")
	}
	if len(notifier.notices) != 1 || notifier.notices[0] != SessionExpiredNotice {
		t.Fatalf("notices = %v", notifier.notices)
	}
}

func TestErrorWatch_LoginUnauthorizedIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := newSession(t)
	notifier := &memNotifier{}
	client := &http.Client{Transport: &ErrorWatch{Session: sess, Notifier: notifier}}

	resp, err := client.Post(srv.URL+"/api/users/login", "application/json", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if sess.Current() == nil {
		t.Fatalf("failed login must not tear down the existing session")
	}
	if len(notifier.notices) != 0 {
		t.Fatalf("unexpected notices %v", notifier.notices)
	}
}

func TestErrorWatch_ServerErrorNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"boom"}`)
	}))
	defer srv.Close()

	sess := newSession(t)
	notifier := &memNotifier{}
	client := &http.Client{Transport: &ErrorWatch{Session: sess, Notifier: notifier}}

	resp, err := client.Get(srv.URL + "/api/cursos")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if sess.Current() == nil {
		t.Fatalf("non-401 error must not log out")
	}
	if len(notifier.notices) != 1 || notifier.notices[0] != "Error: 500 - boom" {
		t.Fatalf("notices = %v", notifier.notices)
	}
}

func TestErrorWatch_StatusTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	notifier := &memNotifier{}
	client := &http.Client{Transport: &ErrorWatch{Session: newSession(t), Notifier: notifier}}

	resp, err := client.Get(srv.URL + "/api/cursos")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()

	if len(notifier.notices) != 1 || notifier.notices[0] != "Error: 502 - Bad Gateway" {
		t.Fatalf("notices = %v", notifier.notices)
	}
}

func TestErrorWatch_BodySurvivesPeek(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"Professor não encontrado."}`)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &ErrorWatch{Session: newSession(t), Notifier: &memNotifier{}}}
	resp, err := client.Get(srv.URL + "/api/professores/99")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if got := domain.ServerMessage(body); got != "Professor não encontrado." {
		t.Fatalf("downstream body lost: %q", body)
	}
}
