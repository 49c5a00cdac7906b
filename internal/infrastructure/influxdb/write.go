package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names written by the gateway.
const (
	// MeasurementRecord holds one field per numeric record parameter.
	MeasurementRecord = "ventilation"

	// MeasurementPoll holds poll cycle statistics.
	MeasurementPoll = "gateway_poll"
)

// WriteRecord writes the numeric parameters of a settled record.
//
// fields maps canonical parameter names to float64 values, as produced by
// record.Record.Metrics. The write is non-blocking; data is batched and
// sent asynchronously.
//
// Example:
//
//	client.WriteRecord("home", rec.Metrics(), time.Now())
func (c *Client) WriteRecord(site string, fields map[string]interface{}, ts time.Time) {
	if !c.IsConnected() || len(fields) == 0 {
		return
	}
	c.writer.WritePoint(recordPoint(site, fields, ts))
}

// WritePollResult records the outcome and duration of one poll cycle.
//
// Parameters:
//   - site: Site identifier tag
//   - duration: Wall time of fetch, parse and apply
//   - applied: Number of parameters that changed type-checked values
//   - rejected: Number of labels that could not be applied
//   - ok: false if the poll failed before the record was updated
func (c *Client) WritePollResult(site string, duration time.Duration, applied, rejected int, ok bool) {
	if !c.IsConnected() {
		return
	}
	c.writer.WritePoint(pollPoint(site, duration, applied, rejected, ok, time.Now()))
}

func recordPoint(site string, fields map[string]interface{}, ts time.Time) *write.Point {
	return write.NewPoint(
		MeasurementRecord,
		map[string]string{"site": site},
		fields,
		ts,
	)
}

func pollPoint(site string, duration time.Duration, applied, rejected int, ok bool, ts time.Time) *write.Point {
	return write.NewPoint(
		MeasurementPoll,
		map[string]string{"site": site},
		map[string]interface{}{
			"duration_ms": float64(duration.Microseconds()) / 1000,
			"applied":     applied,
			"rejected":    rejected,
			"ok":          ok,
		},
		ts,
	)
}
