package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/netmon/internal/core/entities/connstate"
	"github.com/sergeii/netmon/internal/testutils"
	"github.com/sergeii/netmon/internal/testutils/factories/eventfactory"
)

func TestAPI_ListHistory_Empty(t *testing.T) {
	var events []map[string]interface{}

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/history", nil,
		testutils.MustBindJSON(&events),
	)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, events, 0)
}

func TestAPI_ListHistory_Chronological(t *testing.T) {
	var events []map[string]interface{}

	ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
	defer cancel()

	began := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	seeded := []struct {
		previous connstate.Status
		current  connstate.Status
	}{
		{connstate.Unknown, connstate.Online},
		{connstate.Online, connstate.Offline},
		{connstate.Offline, connstate.Online},
	}
	for i, transition := range seeded {
		evt := eventfactory.Build(
			eventfactory.WithTransition(transition.previous, transition.current),
			eventfactory.WithTimestamp(began.Add(time.Duration(i)*time.Minute)),
		)
		require.NoError(t, repos.History.Add(t.Context(), evt))
	}

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/history", nil,
		testutils.MustBindJSON(&events),
	)

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, events, 3)

	assert.Equal(t, "unknown", events[0]["previous"])
	assert.Equal(t, "online", events[0]["current"])
	assert.Equal(t, "Initial status: Online", events[0]["label"])
	assert.Equal(t, "initial-status-online", events[0]["label_slug"])

	assert.Equal(t, "online", events[1]["previous"])
	assert.Equal(t, "offline", events[1]["current"])
	assert.Equal(t, "Internet connection lost", events[1]["label"])
	assert.Equal(t, "internet-connection-lost", events[1]["label_slug"])

	assert.Equal(t, "offline", events[2]["previous"])
	assert.Equal(t, "online", events[2]["current"])
	assert.Equal(t, "Internet connection restored", events[2]["label"])
	assert.Equal(t, "internet-connection-restored", events[2]["label_slug"])
}

func TestAPI_ListHistory_Limit(t *testing.T) {
	var events []map[string]interface{}

	ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
	defer cancel()

	began := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	current := connstate.Online
	for i := range 10 {
		previous := current
		if current == connstate.Online {
			current = connstate.Offline
		} else {
			current = connstate.Online
		}
		evt := eventfactory.Build(
			eventfactory.WithTransition(previous, current),
			eventfactory.WithTimestamp(began.Add(time.Duration(i)*time.Minute)),
		)
		require.NoError(t, repos.History.Add(t.Context(), evt))
	}

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/history?limit=3", nil,
		testutils.MustBindJSON(&events),
	)

	assert.Equal(t, 200, resp.StatusCode)
	require.Len(t, events, 3)
	// the most recent events are returned, still oldest first
	wantTimestamps := []time.Time{
		began.Add(7 * time.Minute),
		began.Add(8 * time.Minute),
		began.Add(9 * time.Minute),
	}
	for i, want := range wantTimestamps {
		ts, err := time.Parse(time.RFC3339, events[i]["timestamp"].(string)) // nolint: forcetypeassert
		require.NoError(t, err)
		assert.True(t, want.Equal(ts))
	}
}

func TestAPI_ListHistory_FilterByState(t *testing.T) {
	tests := []struct {
		state string
		want  int
	}{
		{"online", 2},
		{"offline", 1},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			var events []map[string]interface{}

			ts, repos, cancel := testutils.PrepareTestServerWithRepos(t)
			defer cancel()

			began := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
			seeded := []struct {
				previous connstate.Status
				current  connstate.Status
			}{
				{connstate.Unknown, connstate.Online},
				{connstate.Online, connstate.Offline},
				{connstate.Offline, connstate.Online},
			}
			for i, transition := range seeded {
				evt := eventfactory.Build(
					eventfactory.WithTransition(transition.previous, transition.current),
					eventfactory.WithTimestamp(began.Add(time.Duration(i)*time.Minute)),
				)
				require.NoError(t, repos.History.Add(t.Context(), evt))
			}

			resp := testutils.DoTestRequest(
				ts, http.MethodGet, fmt.Sprintf("/api/history?state=%s", tt.state),
				nil,
				testutils.MustBindJSON(&events),
			)

			assert.Equal(t, 200, resp.StatusCode)
			require.Len(t, events, tt.want)
			for _, evt := range events {
				assert.Equal(t, tt.state, evt["current"])
			}
		})
	}
}

func TestAPI_ListHistory_ValidateForm(t *testing.T) {
	tests := []struct {
		name string
		qs   string
		want int
	}{
		{"no params is ok", "", 200},
		{"positive limit is ok", "limit=10", 200},
		{"zero limit is rejected", "limit=0", 400},
		{"negative limit is rejected", "limit=-1", 400},
		{"excessive limit is rejected", "limit=1000", 400},
		{"limit must be a number", "limit=ten", 400},
		{"known state is ok", "state=offline", 200},
		{"unknown state is rejected", "state=flaky", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/history?"+tt.qs, nil)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
