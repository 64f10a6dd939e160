package monitor

import (
	"context"
	"net/http"
	"time"
)

// The probe target and cadence are deliberately fixed:
// making them configurable is out of scope for the monitor.
const (
	CheckURL      = "https://www.google.com"
	CheckInterval = 3 * time.Second
	ProbeTimeout  = 3 * time.Second
)

// Prober performs a single bounded-time reachability check.
// Any failure mode collapses to false; a Prober never returns an error.
type Prober interface {
	Probe(ctx context.Context) bool
}

type HTTPProber struct {
	client *http.Client
	url    string
}

func NewHTTPProber(url string, timeout time.Duration) HTTPProber {
	return HTTPProber{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

// Probe attempts a single GET against the configured endpoint.
// Only a completed response with a non-error status counts as online;
// DNS failures, refused connections, timeouts and 4xx/5xx responses
// all uniformly resolve to offline.
func (p HTTPProber) Probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() // nolint: errcheck
	return resp.StatusCode < http.StatusBadRequest
}
