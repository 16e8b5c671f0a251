package events

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/routing/router"
)

func TestFromJobResult(t *testing.T) {
	enq := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	at := enq.Add(time.Second)
	res := router.IncidentJobResult{
		Job: router.IncidentJob{ReportID: "r1", Category: "robbery", Lat: 37.8, Lon: -122.27, Enqueued: enq},
		Result: &router.IncidentResult{
			Category: "ROBBERY",
			Severity: 0.85,
			Bumps: []router.CrimeBump{
				{ID: "1_2_0", Before: 0.1, After: 0.27},
				{ID: "2_1_0", Before: 0.1, After: 0.27},
			},
		},
	}
	ev := FromJobResult(res, at)
	assert.Equal(t, "r1", ev.ReportID)
	assert.Equal(t, "ROBBERY", ev.Category)
	assert.Equal(t, 2, ev.EdgesUpdated)
	assert.Equal(t, EdgeBump{EdgeID: "1_2_0", Before: 0.1, After: 0.27}, ev.Bumps[0])
	assert.Empty(t, ev.Error)
	assert.Equal(t, at, ev.AppliedAt)

	failed := FromJobResult(router.IncidentJobResult{
		Job: router.IncidentJob{ReportID: "r2", Category: "ARSON"},
		Err: errors.New("bad coordinates"),
	}, at)
	assert.Equal(t, "ARSON", failed.Category)
	assert.Equal(t, "bad coordinates", failed.Error)
	assert.Zero(t, failed.EdgesUpdated)

	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"edges_updated":2`)
}

func TestNilPublisher(t *testing.T) {
	var p *Publisher
	assert.NoError(t, p.Publish(context.Background(), IncidentApplied{}))
	assert.Empty(t, p.Subject())
	assert.NotPanics(t, func() {
		p.Hook()(router.IncidentJobResult{})
		p.Close()
	})
	assert.Equal(t, DefaultSubject, NewPublisher(nil, "").Subject())
}

func TestPublishRoundTrip(t *testing.T) {
	url := os.Getenv("NATS_URL")
	if url == "" {
		t.Skip("NATS_URL not set")
	}
	subject := "saferoute.test." + uuid.NewString()
	p, err := Connect(url, subject)
	require.NoError(t, err)
	defer p.Close()

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	got := make(chan IncidentApplied, 1)
	_, err = Subscribe(sub, subject, func(ev IncidentApplied) { got <- ev })
	require.NoError(t, err)
	require.NoError(t, sub.Flush())

	require.NoError(t, p.Publish(context.Background(), IncidentApplied{ReportID: "r1", EdgesUpdated: 3}))
	select {
	case ev := <-got:
		assert.Equal(t, "r1", ev.ReportID)
		assert.Equal(t, 3, ev.EdgesUpdated)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}
