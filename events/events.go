// Package events publishes incident updates to NATS so other services can
// follow changes to the safety graph.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rotisserie/eris"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/safestride/routing/router"
)

var log = logrus.WithField("module", "events")

const DefaultSubject = "saferoute.incident.applied"

type EdgeBump struct {
	EdgeID string  `json:"edge_id"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
}

// IncidentApplied describes one processed incident job.
type IncidentApplied struct {
	ReportID     string     `json:"report_id"`
	Category     string     `json:"category"`
	Severity     float64    `json:"severity"`
	Lat          float64    `json:"lat"`
	Lon          float64    `json:"lon"`
	EdgesUpdated int        `json:"edges_updated"`
	Bumps        []EdgeBump `json:"bumps,omitempty"`
	Error        string     `json:"error,omitempty"`
	EnqueuedAt   time.Time  `json:"enqueued_at"`
	AppliedAt    time.Time  `json:"applied_at"`
}

func FromJobResult(res router.IncidentJobResult, at time.Time) IncidentApplied {
	ev := IncidentApplied{
		ReportID:   res.Job.ReportID,
		Category:   res.Job.Category,
		Lat:        res.Job.Lat,
		Lon:        res.Job.Lon,
		EnqueuedAt: res.Job.Enqueued,
		AppliedAt:  at,
	}
	if res.Err != nil {
		ev.Error = res.Err.Error()
	}
	if res.Result != nil {
		ev.Category = res.Result.Category
		ev.Severity = res.Result.Severity
		ev.EdgesUpdated = len(res.Result.Bumps)
		ev.Bumps = lo.Map(res.Result.Bumps, func(b router.CrimeBump, _ int) EdgeBump {
			return EdgeBump{EdgeID: string(b.ID), Before: b.Before, After: b.After}
		})
	}
	return ev
}

// Publisher sends events to a fixed subject. A nil *Publisher drops
// everything, so callers need not check whether NATS is configured.
type Publisher struct {
	nc      *nats.Conn
	subject string
	owned   bool
}

// Connect dials url and returns a Publisher owning the connection.
func Connect(url, subject string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("saferoute"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnf("nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("nats reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, eris.Wrapf(err, "events: connect %s", url)
	}
	p := NewPublisher(nc, subject)
	p.owned = true
	return p, nil
}

func NewPublisher(nc *nats.Conn, subject string) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{nc: nc, subject: subject}
}

func (p *Publisher) Subject() string {
	if p == nil {
		return ""
	}
	return p.subject
}

// Publish serializes ev as JSON and publishes it.
func (p *Publisher) Publish(_ context.Context, ev IncidentApplied) error {
	if p == nil || p.nc == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return eris.Wrap(err, "events: encode")
	}
	msg := &nats.Msg{Subject: p.subject, Data: data, Header: nats.Header{}}
	msg.Header.Set("Report-Id", ev.ReportID)
	if err := p.nc.PublishMsg(msg); err != nil {
		return eris.Wrapf(err, "events: publish %s", p.subject)
	}
	return nil
}

// Hook adapts the publisher to an incident queue hook. Failures are logged.
func (p *Publisher) Hook() router.AppliedFunc {
	return func(res router.IncidentJobResult) {
		if p == nil {
			return
		}
		if err := p.Publish(context.Background(), FromJobResult(res, time.Now())); err != nil {
			log.Warnf("publish incident %s failed: %v", res.Job.ReportID, err)
		}
	}
}

// Subscribe decodes events published on subject and hands them to handler.
// Malformed messages are dropped.
func Subscribe(nc *nats.Conn, subject string, handler func(IncidentApplied)) (*nats.Subscription, error) {
	return nc.Subscribe(subject, func(msg *nats.Msg) {
		var ev IncidentApplied
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			log.Debugf("dropping malformed event on %s: %v", msg.Subject, err)
			return
		}
		handler(ev)
	})
}

// Close flushes and closes a connection opened by Connect.
func (p *Publisher) Close() {
	if p == nil || p.nc == nil || !p.owned {
		return
	}
	if err := p.nc.Flush(); err != nil {
		log.Warnf("nats flush: %v", err)
	}
	p.nc.Close()
}
