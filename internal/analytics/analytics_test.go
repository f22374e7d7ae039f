package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type captured struct {
	mu     sync.Mutex
	bodies []envelope
}

func newTestServer(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	cap := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/send" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}

		var env envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			t.Errorf("decode body: %v", err)
		}

		cap.mu.Lock()
		cap.bodies = append(cap.bodies, env)
		cap.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, cap
}

func TestTrackPayloadShape(t *testing.T) {
	srv, cap := newTestServer(t)
	c := New(Config{BaseURL: srv.URL, WebsiteID: "site-1", Version: "test"})

	c.Track("feature_vcf", map[string]any{"files": 3})
	c.Close()

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if len(cap.bodies) != 1 {
		t.Fatalf("got %d events, want 1", len(cap.bodies))
	}

	env := cap.bodies[0]
	if env.Type != "event" {
		t.Errorf("type = %q, want event", env.Type)
	}
	if env.Payload.Website != "site-1" {
		t.Errorf("website = %q", env.Payload.Website)
	}
	if env.Payload.Hostname != eventHostname {
		t.Errorf("hostname = %q", env.Payload.Hostname)
	}
	if env.Payload.Name != "feature_vcf" {
		t.Errorf("name = %q", env.Payload.Name)
	}
	if sid, ok := env.Payload.Data["session_id"].(string); !ok || sid == "" {
		t.Error("payload missing session_id")
	}
	if env.Payload.Data["files"] != float64(3) {
		t.Errorf("payload files = %v", env.Payload.Data["files"])
	}
}

func TestTrackDisabledByEnv(t *testing.T) {
	srv, cap := newTestServer(t)
	t.Setenv(DisableEnv, "1")

	c := New(Config{BaseURL: srv.URL})
	c.Track("app_start", nil)
	c.Close()

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if len(cap.bodies) != 0 {
		t.Errorf("disabled client sent %d events", len(cap.bodies))
	}
}

func TestTrackServerDownIsSilent(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1", WebsiteID: "x"})

	// must not panic or block beyond the timeout
	c.Track("app_start", nil)
	c.TrackAppClose()
	c.Close()
}

func TestTrackFeaturePrefix(t *testing.T) {
	srv, cap := newTestServer(t)
	c := New(Config{BaseURL: srv.URL})

	c.TrackFeature("names", map[string]any{"count": 10})
	c.Close()

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if len(cap.bodies) != 1 || cap.bodies[0].Payload.Name != "feature_names" {
		t.Errorf("events = %+v, want one feature_names", cap.bodies)
	}
}

func TestSessionIDStablePerClient(t *testing.T) {
	srv, cap := newTestServer(t)
	c := New(Config{BaseURL: srv.URL})

	c.Track("a", nil)
	c.Track("b", nil)
	c.Close()

	cap.mu.Lock()
	defer cap.mu.Unlock()
	if len(cap.bodies) != 2 {
		t.Fatalf("got %d events", len(cap.bodies))
	}
	if cap.bodies[0].Payload.Data["session_id"] != cap.bodies[1].Payload.Data["session_id"] {
		t.Error("session_id should be stable across one client's events")
	}
}
