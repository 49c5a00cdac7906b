package gateway

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
	"github.com/nerrad567/easycontrols-gateway/internal/record"
)

// defaultPollInterval applies when Config.PollInterval is not set.
const defaultPollInterval = 30 * time.Second

// Transport is the device side of the gateway.
// Implemented by easycontrols.Client.
type Transport interface {
	// Fetch reads every configured page and returns the merged frame.
	Fetch(ctx context.Context) (*frame.Frame, error)

	// Write posts label=value pairs to the unit.
	Write(ctx context.Context, values map[string]string) error
}

// Sink receives every completed poll cycle.
//
// Sinks run synchronously on the polling goroutine in registration order.
// A returned error is logged and does not affect other sinks.
type Sink interface {
	Publish(ctx context.Context, c Cycle) error
}

// Logger is the logging interface used by the gateway.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Cycle describes one completed poll.
type Cycle struct {
	ID       string
	SiteID   string
	PolledAt time.Time
	Duration time.Duration
	Result   record.Result

	// Record is the record published by this cycle, or the unchanged
	// previous record when Err is set. Treat as read-only.
	Record  *record.Record
	Version uint64

	Err error
}

// OK reports whether the cycle updated the record.
func (c Cycle) OK() bool { return c.Err == nil }

// Config holds gateway settings.
type Config struct {
	SiteID       string
	PollInterval time.Duration
}

type namedSink struct {
	name string
	sink Sink
}

// Gateway owns the record store and the poll loop.
//
// Thread Safety: All methods are safe for concurrent use. Polls are
// serialised, so a forced poll never overlaps a scheduled one.
type Gateway struct {
	cfg       Config
	transport Transport
	store     *record.Store

	sinks   []namedSink
	sinksMu sync.RWMutex

	pollMu sync.Mutex

	status   Status
	statusMu sync.RWMutex
	running  atomic.Bool

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	logger   Logger
	loggerMu sync.RWMutex
}

// New creates a gateway with a fresh record. Call Run or Start to begin polling.
func New(cfg Config, transport Transport) *Gateway {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Gateway{
		cfg:       cfg,
		transport: transport,
		store:     record.NewStore(),
		status:    Status{SiteID: cfg.SiteID},
		done:      make(chan struct{}),
		logger:    noopLogger{},
	}
}

// SetLogger sets the logger for the gateway.
func (g *Gateway) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	g.loggerMu.Lock()
	g.logger = logger
	g.loggerMu.Unlock()
}

func (g *Gateway) log() Logger {
	g.loggerMu.RLock()
	defer g.loggerMu.RUnlock()
	return g.logger
}

// AddSink registers a sink under a name used in log messages.
func (g *Gateway) AddSink(name string, s Sink) {
	g.sinksMu.Lock()
	g.sinks = append(g.sinks, namedSink{name: name, sink: s})
	g.sinksMu.Unlock()
}

// Record returns the latest published record. Treat as read-only.
func (g *Gateway) Record() *record.Record {
	return g.store.Load()
}

// Version returns the number of records published so far.
func (g *Gateway) Version() uint64 {
	return g.store.Version()
}

// Run polls immediately and then on every interval until ctx is cancelled
// or Stop is called. It always returns nil.
func (g *Gateway) Run(ctx context.Context) error {
	g.running.Store(true)
	defer g.running.Store(false)

	ticker := time.NewTicker(g.cfg.PollInterval)
	defer ticker.Stop()

	g.log().Info("gateway polling started",
		"site_id", g.cfg.SiteID,
		"interval", g.cfg.PollInterval.String(),
	)

	g.pollAndLog(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-g.done:
			return nil
		case <-ticker.C:
			g.pollAndLog(ctx)
		}
	}
}

// Start runs the poll loop in a background goroutine.
func (g *Gateway) Start(ctx context.Context) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.Run(ctx) //nolint:errcheck // Run always returns nil
	}()
}

// Stop ends the poll loop and waits for an in-flight cycle to finish.
// Safe to call multiple times.
func (g *Gateway) Stop() {
	g.stopOnce.Do(func() {
		close(g.done)
		g.wg.Wait()
		g.log().Info("gateway polling stopped", "site_id", g.cfg.SiteID)
	})
}

func (g *Gateway) pollAndLog(ctx context.Context) {
	c, err := g.PollNow(ctx)
	if err != nil {
		g.log().Warn("poll failed",
			"cycle_id", c.ID,
			"error", err,
		)
		return
	}
	g.log().Debug("poll completed",
		"cycle_id", c.ID,
		"version", c.Version,
		"applied", c.Result.Applied,
		"rejected", c.Result.Rejected,
		"duration_ms", c.Duration.Milliseconds(),
	)
}

// PollNow runs one poll cycle and publishes it to every sink.
//
// On failure the record is not changed; the returned Cycle still carries the
// cycle ID and the error is wrapped with ErrPollFailed.
func (g *Gateway) PollNow(ctx context.Context) (Cycle, error) {
	g.pollMu.Lock()
	defer g.pollMu.Unlock()

	start := time.Now()
	c := Cycle{
		ID:       uuid.NewString(),
		SiteID:   g.cfg.SiteID,
		PolledAt: start.UTC(),
	}

	f, err := g.transport.Fetch(ctx)
	if err != nil {
		c.Duration = time.Since(start)
		c.Err = fmt.Errorf("%w: %w", ErrPollFailed, err)
		c.Record = g.store.Load()
		c.Version = g.store.Version()
	} else {
		c.Record, c.Result = g.store.Apply(f)
		c.Version = g.store.Version()
		c.Duration = time.Since(start)
	}

	g.recordStatus(c)
	g.publish(ctx, c)
	return c, c.Err
}

// publish hands c to every sink, logging failures.
func (g *Gateway) publish(ctx context.Context, c Cycle) {
	g.sinksMu.RLock()
	sinks := make([]namedSink, len(g.sinks))
	copy(sinks, g.sinks)
	g.sinksMu.RUnlock()

	for _, s := range sinks {
		if err := s.sink.Publish(ctx, c); err != nil {
			g.log().Warn("sink publish failed",
				"sink", s.name,
				"cycle_id", c.ID,
				"error", err,
			)
		}
	}
}

// Set writes one parameter to the unit.
//
// The name is resolved through the registry and raw is validated against
// the parameter's kind before anything is sent. After a successful write
// the gateway polls so the record reflects what the unit stored; a failure
// of that poll is logged, not returned.
//
// Returns the value that was written, normalised to its kind.
func (g *Gateway) Set(ctx context.Context, name, raw string) (parameter.Value, error) {
	d, ok := parameter.LookupByName(name)
	if !ok {
		return parameter.Value{}, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}

	v, ok := parameter.Coerce(d, raw)
	if !ok {
		return parameter.Value{}, fmt.Errorf("%w: %q is not a valid %s for %s", ErrInvalidValue, raw, d.Kind, name)
	}

	if err := g.transport.Write(ctx, map[string]string{d.Label: v.Raw()}); err != nil {
		g.statusMu.Lock()
		g.status.WriteFailures++
		g.statusMu.Unlock()
		return parameter.Value{}, fmt.Errorf("%w: %s: %w", ErrWriteFailed, name, err)
	}

	g.statusMu.Lock()
	g.status.Writes++
	g.statusMu.Unlock()

	g.log().Info("parameter written",
		"name", name,
		"label", d.Label,
		"value", v.Raw(),
	)

	if _, err := g.PollNow(ctx); err != nil {
		g.log().Warn("poll after write failed", "name", name, "error", err)
	}

	return v, nil
}
