package action

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNotifier_PostsMessageToTopic(t *testing.T) {
	var mu sync.Mutex
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotPath, gotBody = r.URL.Path, string(body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotifier(srv.URL, discardLogger)
	n.Notify("delta-wins", "value changed 10 -> 12")

	mu.Lock()
	defer mu.Unlock()
	if gotPath != "/delta-wins" {
		t.Fatalf("posted to %q, want /delta-wins", gotPath)
	}
	if gotBody != "value changed 10 -> 12" {
		t.Fatalf("body %q", gotBody)
	}
}

func TestNotifier_EmptyTopicIsNoOp(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	NewNotifier(srv.URL, discardLogger).Notify("", "message")
	if called {
		t.Fatal("empty topic must not post")
	}
}

func TestNotifier_FailuresAreSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	n := NewNotifier(srv.URL, discardLogger)
	n.Notify("topic", "rejected") // must not panic

	srv.Close()
	n.Notify("topic", "unreachable") // connection refused, must not panic
}

func TestNotifier_DefaultServer(t *testing.T) {
	n := NewNotifier("", discardLogger)
	if n.server != DefaultNotifyServer {
		t.Fatalf("server %q, want %q", n.server, DefaultNotifyServer)
	}
}
