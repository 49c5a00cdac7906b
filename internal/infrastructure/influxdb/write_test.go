package influxdb

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/config"
)

func TestRecordPoint(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	p := recordPoint("home", map[string]interface{}{
		"TemperatureOutdoor": 7.5,
		"BoosterActive":      1.0,
	}, ts)

	line := write.PointToLineProtocol(p, time.Second)
	want := "ventilation,site=home BoosterActive=1,TemperatureOutdoor=7.5 1700000000\n"
	if line != want {
		t.Errorf("line protocol = %q, want %q", line, want)
	}
}

func TestPollPoint(t *testing.T) {
	p := pollPoint("home", 1500*time.Microsecond, 3, 1, false, time.Unix(1, 0))

	line := write.PointToLineProtocol(p, time.Second)
	for _, part := range []string{
		"gateway_poll,site=home ",
		"duration_ms=1.5",
		"applied=3i",
		"rejected=1i",
		"ok=false",
	} {
		if !strings.Contains(line, part) {
			t.Errorf("line protocol %q missing %q", line, part)
		}
	}
}

func TestWritesWhenDisconnected(t *testing.T) {
	c := &Client{}

	// No write API: these must not panic.
	c.WriteRecord("home", map[string]interface{}{"x": 1.0}, time.Now())
	c.WritePollResult("home", time.Second, 0, 0, true)
}

func TestWriteOptions(t *testing.T) {
	tests := []struct {
		name      string
		batch     int
		flush     int
		wantBatch uint
		wantFlush uint
	}{
		{"configured", 500, 2, 500, 2000},
		{"unset", 0, 0, defaultBatchSize, defaultFlushInterval * 1000},
		{"negative", -1, -5, defaultBatchSize, defaultFlushInterval * 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := writeOptions(config.InfluxDBConfig{BatchSize: tt.batch, FlushInterval: tt.flush})
			if got := opts.BatchSize(); got != tt.wantBatch {
				t.Errorf("BatchSize() = %d, want %d", got, tt.wantBatch)
			}
			if got := opts.FlushInterval(); got != tt.wantFlush {
				t.Errorf("FlushInterval() = %d ms, want %d", got, tt.wantFlush)
			}
		})
	}
}

func TestSetOnError(t *testing.T) {
	c := &Client{}
	errs := make(chan error, 2)

	var got []error
	c.SetOnError(func(err error) { got = append(got, err) })
	errs <- errUnhealthy
	close(errs)
	c.forwardErrors(errs)
	if len(got) != 1 || !errors.Is(got[0], errUnhealthy) {
		t.Errorf("callback got %v, want [errUnhealthy]", got)
	}

	// Clearing the callback drops errors.
	c.SetOnError(nil)
	errs = make(chan error, 1)
	errs <- errUnhealthy
	close(errs)
	c.forwardErrors(errs)
	if len(got) != 1 {
		t.Errorf("callback called after SetOnError(nil): %v", got)
	}
}
