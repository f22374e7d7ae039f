// Package analytics sends anonymous usage events to an Umami instance.
// Delivery is fire-and-forget: sends run on their own goroutine, failures
// are logged at debug level and never reach callers.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL   = "https://umami.lvdpub.com"
	defaultWebsiteID = "9ecc9e6b-a8c1-4501-9561-20617798f753"
	eventHostname    = "infogen.desktop"
	sendTimeout      = 5 * time.Second
)

// DisableEnv switches the beacon off when set to any non-empty value.
const DisableEnv = "INFOGEN_NO_ANALYTICS"

// Config holds beacon settings. Zero values fall back to the hosted
// defaults.
type Config struct {
	BaseURL   string
	WebsiteID string
	Version   string
}

// Client posts events to the Umami /api/send endpoint.
type Client struct {
	cfg      Config
	http     *http.Client
	session  string
	start    time.Time
	disabled bool
	wg       sync.WaitGroup
}

// New creates a client. A fresh session UUID is minted per process; no
// machine identifier is collected.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.WebsiteID == "" {
		cfg.WebsiteID = defaultWebsiteID
	}

	return &Client{
		cfg:      cfg,
		http:     &http.Client{Timeout: sendTimeout},
		session:  uuid.NewString(),
		start:    time.Now(),
		disabled: os.Getenv(DisableEnv) != "",
	}
}

type envelope struct {
	Type    string  `json:"type"`
	Payload payload `json:"payload"`
}

type payload struct {
	Website  string         `json:"website"`
	Hostname string         `json:"hostname"`
	Name     string         `json:"name"`
	Data     map[string]any `json:"data,omitempty"`
}

// Track queues one named event for async delivery. Safe to call from any
// goroutine; never blocks on the network.
func (c *Client) Track(event string, data map[string]any) {
	if c.disabled {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.send(event, data)
	}()
}

// TrackAppStart records process start.
func (c *Client) TrackAppStart() {
	c.Track("app_start", map[string]any{
		"start_time": time.Now().Format(time.RFC3339),
	})
}

// TrackAppClose records process end with the session duration in seconds.
func (c *Client) TrackAppClose() {
	c.Track("app_close", map[string]any{
		"session_duration": int(time.Since(c.start).Seconds()),
	})
}

// TrackFeature records a generation feature being used.
func (c *Client) TrackFeature(feature string, data map[string]any) {
	c.Track("feature_"+feature, data)
}

// Close waits for in-flight sends; bounded by the client timeout.
func (c *Client) Close() {
	c.wg.Wait()
}

func (c *Client) send(event string, data map[string]any) {
	merged := map[string]any{
		"session_id": c.session,
		"platform":   runtime.GOOS,
		"version":    c.cfg.Version,
	}
	for k, v := range data {
		merged[k] = v
	}

	body, err := json.Marshal(envelope{
		Type: "event",
		Payload: payload{
			Website:  c.cfg.WebsiteID,
			Hostname: eventHostname,
			Name:     event,
			Data:     merged,
		},
	})
	if err != nil {
		slog.Debug("analytics: marshal", "event", event, "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/send", bytes.NewReader(body))
	if err != nil {
		slog.Debug("analytics: request", "event", event, "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "infogen/"+c.cfg.Version)

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("analytics: send", "event", event, "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("analytics: send", "event", event, "status", resp.StatusCode)
	}
}
