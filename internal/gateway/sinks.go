package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nerrad567/easycontrols-gateway/internal/history"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/mqtt"
	"github.com/nerrad567/easycontrols-gateway/internal/projection"
)

// =============================================================================
// MQTT
// =============================================================================

// Publisher is the subset of mqtt.Client used by MQTTSink.
type Publisher interface {
	PublishRetained(topic string, payload []byte) error
	IsConnected() bool
}

// MQTTSink publishes the record and every projection as retained JSON.
//
// Only payloads that differ from the last one sent on a topic are
// published. Call Reset after a broker reconnect to resend everything.
type MQTTSink struct {
	pub    Publisher
	topics mqtt.Topics

	last map[string][]byte
	mu   sync.Mutex
}

// NewMQTTSink creates a sink publishing under topics.
func NewMQTTSink(pub Publisher, topics mqtt.Topics) *MQTTSink {
	return &MQTTSink{
		pub:    pub,
		topics: topics,
		last:   make(map[string][]byte),
	}
}

// Reset forgets what was last published so the next cycle sends every topic.
func (s *MQTTSink) Reset() {
	s.mu.Lock()
	s.last = make(map[string][]byte)
	s.mu.Unlock()
}

// Publish implements Sink. Failed cycles and a disconnected client are skipped.
func (s *MQTTSink) Publish(_ context.Context, c Cycle) error {
	if !c.OK() || !s.pub.IsConnected() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	errs = append(errs, s.publishChanged(s.topics.Record(), c.Record))
	for _, name := range projection.Names() {
		view, _ := projection.Build(name, c.Record)
		errs = append(errs, s.publishChanged(s.topics.View(name), view))
	}
	return errors.Join(errs...)
}

func (s *MQTTSink) publishChanged(topic string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", topic, err)
	}
	if bytes.Equal(s.last[topic], payload) {
		return nil
	}
	if err := s.pub.PublishRetained(topic, payload); err != nil {
		return err
	}
	s.last[topic] = payload
	return nil
}

// =============================================================================
// InfluxDB
// =============================================================================

// MetricsWriter is the subset of influxdb.Client used by InfluxSink.
type MetricsWriter interface {
	WriteRecord(site string, fields map[string]interface{}, ts time.Time)
	WritePollResult(site string, duration time.Duration, applied, rejected int, ok bool)
}

// InfluxSink writes poll statistics for every cycle and the numeric record
// fields for every successful one.
type InfluxSink struct {
	w MetricsWriter
}

// NewInfluxSink creates a sink over w.
func NewInfluxSink(w MetricsWriter) *InfluxSink {
	return &InfluxSink{w: w}
}

// Publish implements Sink. Writes are asynchronous and never fail here.
func (s *InfluxSink) Publish(_ context.Context, c Cycle) error {
	s.w.WritePollResult(c.SiteID, c.Duration, c.Result.Applied, c.Result.Rejected, c.OK())
	if c.OK() {
		s.w.WriteRecord(c.SiteID, c.Record.Metrics(), c.PolledAt)
	}
	return nil
}

// =============================================================================
// History
// =============================================================================

// pruneInterval is the minimum time between retention sweeps.
const pruneInterval = time.Hour

// HistorySink stores every cycle in the poll history and prunes rows older
// than the retention period.
type HistorySink struct {
	repo      history.Repository
	retention time.Duration

	lastPrune time.Time
	mu        sync.Mutex
}

// NewHistorySink creates a sink over repo. A zero retention keeps everything.
func NewHistorySink(repo history.Repository, retention time.Duration) *HistorySink {
	return &HistorySink{repo: repo, retention: retention}
}

// Publish implements Sink.
func (s *HistorySink) Publish(ctx context.Context, c Cycle) error {
	entry := history.Entry{
		CycleID:  c.ID,
		SiteID:   c.SiteID,
		PolledAt: c.PolledAt,
		Duration: c.Duration,
		Applied:  c.Result.Applied,
		Rejected: c.Result.Rejected,
	}
	if c.OK() {
		snapshot, err := json.Marshal(c.Record)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		entry.Snapshot = snapshot
	} else {
		entry.Error = c.Err.Error()
	}

	if err := s.repo.Record(ctx, entry); err != nil {
		return err
	}
	return s.maybePrune(ctx, c.PolledAt)
}

func (s *HistorySink) maybePrune(ctx context.Context, now time.Time) error {
	if s.retention <= 0 {
		return nil
	}

	s.mu.Lock()
	due := now.Sub(s.lastPrune) >= pruneInterval
	if due {
		s.lastPrune = now
	}
	s.mu.Unlock()
	if !due {
		return nil
	}

	if _, err := s.repo.Prune(ctx, s.retention); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}
	return nil
}
