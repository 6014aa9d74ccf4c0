package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/buildrun/unihub-client/domain"
)

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	user := &domain.User{ID: 1, Username: "ana", Email: "a@x.com", Role: domain.RoleAdmin}
	if err := store.Save(context.Background(), user, "t1"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, token, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "t1" {
		t.Fatalf("expected token t1, got %q", token)
	}
	if got == nil || *got != *user {
		t.Fatalf("loaded user %+v, want %+v", got, user)
	}

	raw, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		t.Fatalf("token file: %v", err)
	}
	if string(raw) != "t1" {
		t.Fatalf("token file holds %q", raw)
	}
}

func TestFileStore_LoadRestoresTokenKey(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	user := &domain.User{ID: 7, Username: "bruno", Role: domain.RoleUser}
	if err := store.Save(context.Background(), user, "t2"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Simulate a stray deletion of the token key; Load rebuilds it from the blob.
	if err := os.Remove(filepath.Join(dir, tokenFile)); err != nil {
		t.Fatalf("remove token: %v", err)
	}

	if _, _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil || string(raw) != "t2" {
		t.Fatalf("token key not restored: %q, %v", raw, err)
	}
}

func TestFileStore_LoadAbsent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	user, token, err := store.Load(context.Background())
	if err != nil || user != nil || token != "" {
		t.Fatalf("expected anonymous, got (%+v, %q, %v)", user, token, err)
	}
}

func TestFileStore_LoadMalformed(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, sessionFile), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := store.Load(context.Background()); err == nil {
		t.Fatalf("expected error on malformed blob")
	}
}

func TestFileStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	user := &domain.User{ID: 1, Username: "ana", Role: domain.RoleUser}
	if err := store.Save(context.Background(), user, "t1"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, name := range []string{tokenFile, sessionFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("%s still present after Clear", name)
		}
	}

	// Clearing again is a no-op.
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
