package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/mqtt"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// =============================================================================
// Test fakes
// =============================================================================

// fakeUnit simulates the ventilation unit: writes update its state and
// the next fetch returns it.
type fakeUnit struct {
	mu       sync.Mutex
	values   map[string]string
	fetchErr error
	writeErr error
	fetches  int
	writes   []map[string]string
}

func newFakeUnit(values map[string]string) *fakeUnit {
	if values == nil {
		values = make(map[string]string)
	}
	return &fakeUnit{values: values}
}

func (u *fakeUnit) Fetch(_ context.Context) (*frame.Frame, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.fetches++
	if u.fetchErr != nil {
		return nil, u.fetchErr
	}
	f := frame.New("en")
	for label, v := range u.values {
		f.Set(label, v)
	}
	return f, nil
}

func (u *fakeUnit) Write(_ context.Context, values map[string]string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.writeErr != nil {
		return u.writeErr
	}
	u.writes = append(u.writes, values)
	for k, v := range values {
		u.values[k] = v
	}
	return nil
}

func (u *fakeUnit) fetchCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.fetches
}

func (u *fakeUnit) setFetchErr(err error) {
	u.mu.Lock()
	u.fetchErr = err
	u.mu.Unlock()
}

// recordingSink keeps every cycle it is handed.
type recordingSink struct {
	mu     sync.Mutex
	cycles []Cycle
	err    error
}

func (s *recordingSink) Publish(_ context.Context, c Cycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycles = append(s.cycles, c)
	return s.err
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cycles)
}

func label(t *testing.T, name string) string {
	t.Helper()
	d, ok := parameter.LookupByName(name)
	if !ok {
		t.Fatalf("LookupByName(%q) not found", name)
	}
	return d.Label
}

func newTestGateway(t *testing.T, unit *fakeUnit) *Gateway {
	t.Helper()
	return New(Config{SiteID: "test", PollInterval: 10 * time.Millisecond}, unit)
}

// =============================================================================
// PollNow
// =============================================================================

func TestPollNow_Success(t *testing.T) {
	unit := newFakeUnit(map[string]string{
		label(t, "VentilationLevel"):   "3",
		label(t, "TemperatureOutdoor"): "12.5",
		"v99999":                       "ignored",
	})
	gw := newTestGateway(t, unit)
	sink := &recordingSink{}
	gw.AddSink("rec", sink)

	c, err := gw.PollNow(context.Background())
	if err != nil {
		t.Fatalf("PollNow() error = %v", err)
	}
	if c.ID == "" {
		t.Error("cycle ID is empty")
	}
	if c.SiteID != "test" {
		t.Errorf("SiteID = %q, want test", c.SiteID)
	}
	if !c.OK() {
		t.Error("OK() = false, want true")
	}
	if c.Result.Applied != 2 {
		t.Errorf("Applied = %d, want 2", c.Result.Applied)
	}
	if c.Version != 1 {
		t.Errorf("Version = %d, want 1", c.Version)
	}

	r := gw.Record()
	if r.VentilationLevel != parameter.VentilationLevel3 {
		t.Errorf("VentilationLevel = %v, want 3", r.VentilationLevel)
	}
	if r.TemperatureOutdoor != 12.5 {
		t.Errorf("TemperatureOutdoor = %v, want 12.5", r.TemperatureOutdoor)
	}

	if sink.count() != 1 {
		t.Fatalf("sink received %d cycles, want 1", sink.count())
	}
	if sink.cycles[0].ID != c.ID {
		t.Error("sink received a different cycle")
	}

	st := gw.Status()
	if st.Polls != 1 || st.Failures != 0 {
		t.Errorf("Polls/Failures = %d/%d, want 1/0", st.Polls, st.Failures)
	}
	if st.LastCycleID != c.ID {
		t.Errorf("LastCycleID = %q, want %q", st.LastCycleID, c.ID)
	}
	if st.LastSuccess.IsZero() {
		t.Error("LastSuccess not set")
	}
	if st.RecordVersion != 1 {
		t.Errorf("RecordVersion = %d, want 1", st.RecordVersion)
	}
}

func TestPollNow_FailureKeepsRecord(t *testing.T) {
	unit := newFakeUnit(map[string]string{label(t, "TemperatureOutdoor"): "7.25"})
	gw := newTestGateway(t, unit)
	sink := &recordingSink{}
	gw.AddSink("rec", sink)

	if _, err := gw.PollNow(context.Background()); err != nil {
		t.Fatalf("first PollNow() error = %v", err)
	}
	before := gw.Record()

	unit.setFetchErr(errors.New("connection refused"))
	c, err := gw.PollNow(context.Background())
	if !errors.Is(err, ErrPollFailed) {
		t.Fatalf("PollNow() error = %v, want ErrPollFailed", err)
	}
	if c.OK() {
		t.Error("OK() = true for failed cycle")
	}
	if c.Record != before {
		t.Error("failed cycle should carry the previous record")
	}
	if gw.Record() != before {
		t.Error("record replaced after failed poll")
	}
	if gw.Version() != 1 {
		t.Errorf("Version = %d, want 1", gw.Version())
	}
	if sink.count() != 2 {
		t.Errorf("sink received %d cycles, want 2 (failures are published too)", sink.count())
	}

	st := gw.Status()
	if st.Polls != 2 || st.Failures != 1 {
		t.Errorf("Polls/Failures = %d/%d, want 2/1", st.Polls, st.Failures)
	}
	if st.LastError == "" {
		t.Error("LastError not set")
	}

	unit.setFetchErr(nil)
	if _, err := gw.PollNow(context.Background()); err != nil {
		t.Fatalf("recovery PollNow() error = %v", err)
	}
	if gw.Status().LastError != "" {
		t.Error("LastError not cleared after a successful poll")
	}
}

func TestPollNow_SinkErrorDoesNotStopOthers(t *testing.T) {
	gw := newTestGateway(t, newFakeUnit(nil))
	bad := &recordingSink{err: errors.New("boom")}
	good := &recordingSink{}
	gw.AddSink("bad", bad)
	gw.AddSink("good", good)

	if _, err := gw.PollNow(context.Background()); err != nil {
		t.Fatalf("PollNow() error = %v", err)
	}
	if good.count() != 1 {
		t.Errorf("good sink received %d cycles, want 1", good.count())
	}
}

func TestPollNow_RejectedValuesCounted(t *testing.T) {
	unit := newFakeUnit(map[string]string{
		label(t, "VentilationLevel"):   "9",
		label(t, "TemperatureOutdoor"): "warm",
	})
	gw := newTestGateway(t, unit)

	c, err := gw.PollNow(context.Background())
	if err != nil {
		t.Fatalf("PollNow() error = %v", err)
	}
	if c.Result.Rejected != 2 {
		t.Errorf("Rejected = %d, want 2", c.Result.Rejected)
	}
	if gw.Status().LastRejected != 2 {
		t.Errorf("LastRejected = %d, want 2", gw.Status().LastRejected)
	}
}

// =============================================================================
// Set
// =============================================================================

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		raw     string
		wantErr error
	}{
		{"unknown parameter", "NoSuchThing", "1", ErrUnknownParameter},
		{"label instead of name", "v00102", "1", ErrUnknownParameter},
		{"enum out of range", "VentilationLevel", "7", ErrInvalidValue},
		{"not a number", "TemperatureOutdoor", "cold", ErrInvalidValue},
		{"not a bool", "BoosterActive", "maybe", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := newFakeUnit(nil)
			gw := newTestGateway(t, unit)

			_, err := gw.Set(context.Background(), tt.param, tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Set() error = %v, want %v", err, tt.wantErr)
			}
			if len(unit.writes) != 0 {
				t.Errorf("transport received %d writes, want 0", len(unit.writes))
			}
		})
	}
}

func TestSet_WritesLabelAndPolls(t *testing.T) {
	unit := newFakeUnit(nil)
	gw := newTestGateway(t, unit)

	v, err := gw.Set(context.Background(), "VentilationLevel", " 2 ")
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v.Raw() != "2" {
		t.Errorf("returned Raw() = %q, want 2", v.Raw())
	}

	if len(unit.writes) != 1 {
		t.Fatalf("transport received %d writes, want 1", len(unit.writes))
	}
	want := label(t, "VentilationLevel")
	if got := unit.writes[0][want]; got != "2" {
		t.Errorf("write[%s] = %q, want 2", want, got)
	}
	if len(unit.writes[0]) != 1 {
		t.Errorf("write carried %d labels, want 1", len(unit.writes[0]))
	}

	if unit.fetchCount() != 1 {
		t.Errorf("fetches after write = %d, want 1", unit.fetchCount())
	}
	if gw.Record().VentilationLevel != parameter.VentilationLevel2 {
		t.Errorf("record VentilationLevel = %v, want 2", gw.Record().VentilationLevel)
	}
	if gw.Status().Writes != 1 {
		t.Errorf("Writes = %d, want 1", gw.Status().Writes)
	}
}

func TestSet_NormalisesBool(t *testing.T) {
	unit := newFakeUnit(nil)
	gw := newTestGateway(t, unit)

	if _, err := gw.Set(context.Background(), "BoosterActive", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := unit.writes[0][label(t, "BoosterActive")]; got != "1" {
		t.Errorf("written value = %q, want 1", got)
	}
	if !gw.Record().BoosterActive {
		t.Error("record BoosterActive = false after write")
	}
}

func TestSet_TransportFailure(t *testing.T) {
	unit := newFakeUnit(nil)
	unit.writeErr = errors.New("timeout")
	gw := newTestGateway(t, unit)

	_, err := gw.Set(context.Background(), "VentilationLevel", "1")
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("Set() error = %v, want ErrWriteFailed", err)
	}
	if unit.fetchCount() != 0 {
		t.Error("gateway polled after a failed write")
	}
	if gw.Status().WriteFailures != 1 {
		t.Errorf("WriteFailures = %d, want 1", gw.Status().WriteFailures)
	}
}

func TestSet_PollFailureAfterWriteIsNotReturned(t *testing.T) {
	unit := newFakeUnit(nil)
	unit.fetchErr = errors.New("gone")
	gw := newTestGateway(t, unit)

	if _, err := gw.Set(context.Background(), "VentilationLevel", "1"); err != nil {
		t.Fatalf("Set() error = %v, want nil", err)
	}
	if gw.Status().Failures != 1 {
		t.Errorf("Failures = %d, want 1", gw.Status().Failures)
	}
}

// =============================================================================
// Run / Stop
// =============================================================================

func TestStartStop(t *testing.T) {
	unit := newFakeUnit(nil)
	gw := newTestGateway(t, unit)

	gw.Start(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for unit.fetchCount() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d polls after 2s", unit.fetchCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !gw.Status().Running {
		t.Error("Running = false while the loop is active")
	}

	gw.Stop()
	gw.Stop() // idempotent

	if gw.Status().Running {
		t.Error("Running = true after Stop")
	}
	n := unit.fetchCount()
	time.Sleep(30 * time.Millisecond)
	if unit.fetchCount() != n {
		t.Error("polling continued after Stop")
	}
}

func TestRun_ContextCancel(t *testing.T) {
	gw := newTestGateway(t, newFakeUnit(nil))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- gw.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNew_DefaultInterval(t *testing.T) {
	gw := New(Config{SiteID: "x"}, newFakeUnit(nil))
	if gw.cfg.PollInterval != defaultPollInterval {
		t.Errorf("PollInterval = %v, want %v", gw.cfg.PollInterval, defaultPollInterval)
	}
}

// =============================================================================
// MQTT set handler
// =============================================================================

func TestSetHandler(t *testing.T) {
	topics := mqtt.Topics{Site: "test"}

	t.Run("writes payload", func(t *testing.T) {
		unit := newFakeUnit(nil)
		gw := newTestGateway(t, unit)
		h := gw.SetHandler(topics)

		if err := h(topics.Set("VentilationLevel"), []byte("4\r\n")); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if got := unit.writes[0][label(t, "VentilationLevel")]; got != "4" {
			t.Errorf("written value = %q, want 4", got)
		}
	})

	t.Run("foreign topic", func(t *testing.T) {
		gw := newTestGateway(t, newFakeUnit(nil))
		h := gw.SetHandler(topics)

		err := h("easycontrols/other/set/VentilationLevel", []byte("1"))
		if !errors.Is(err, ErrUnknownParameter) {
			t.Errorf("handler error = %v, want ErrUnknownParameter", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		gw := newTestGateway(t, newFakeUnit(nil))
		h := gw.SetHandler(topics)

		err := h(topics.Set("VentilationLevel"), []byte("high"))
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("handler error = %v, want ErrInvalidValue", err)
		}
	})
}
