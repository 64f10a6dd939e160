package monitor_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sergeii/netmon/internal/monitor"
)

func TestHTTPProber_ResponseStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"ok", http.StatusOK, true},
		{"no content", http.StatusNoContent, true},
		{"redirect", http.StatusFound, true},
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, false},
		{"gateway timeout", http.StatusGatewayTimeout, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			prober := monitor.NewHTTPProber(ts.URL, time.Second)
			assert.Equal(t, tt.want, prober.Probe(t.Context()))
		})
	}
}

func TestHTTPProber_SlowResponseResolvesToOffline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Millisecond * 250)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	prober := monitor.NewHTTPProber(ts.URL, time.Millisecond*50)

	started := time.Now()
	outcome := prober.Probe(t.Context())

	assert.False(t, outcome)
	// the probe is bounded by its timeout, not by the server's response time
	assert.Less(t, time.Since(started), time.Millisecond*250)
}

func TestHTTPProber_ConnectionRefusedResolvesToOffline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	// shut the server down right away to get a refused connection
	url := ts.URL
	ts.Close()

	prober := monitor.NewHTTPProber(url, time.Second)
	assert.False(t, prober.Probe(t.Context()))
}

func TestHTTPProber_UnresolvableHostResolvesToOffline(t *testing.T) {
	prober := monitor.NewHTTPProber("http://netmon.invalid", time.Second)
	assert.False(t, prober.Probe(t.Context()))
}
