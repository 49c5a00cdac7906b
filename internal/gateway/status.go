package gateway

import "time"

// Status is a point-in-time summary of the poll loop.
type Status struct {
	SiteID        string    `json:"site_id"`
	Running       bool      `json:"running"`
	RecordVersion uint64    `json:"record_version"`
	Polls         uint64    `json:"polls"`
	Failures      uint64    `json:"failures"`
	Writes        uint64    `json:"writes"`
	WriteFailures uint64    `json:"write_failures"`
	LastCycleID   string    `json:"last_cycle_id,omitempty"`
	LastPoll      time.Time `json:"last_poll"`
	LastSuccess   time.Time `json:"last_success"`
	LastError     string    `json:"last_error,omitempty"`
	LastApplied   int       `json:"last_applied"`
	LastRejected  int       `json:"last_rejected"`
}

// Status returns a copy of the current status.
func (g *Gateway) Status() Status {
	g.statusMu.RLock()
	s := g.status
	g.statusMu.RUnlock()

	s.Running = g.running.Load()
	s.RecordVersion = g.store.Version()
	return s
}

func (g *Gateway) recordStatus(c Cycle) {
	g.statusMu.Lock()
	defer g.statusMu.Unlock()

	g.status.Polls++
	g.status.LastCycleID = c.ID
	g.status.LastPoll = c.PolledAt
	if c.Err != nil {
		g.status.Failures++
		g.status.LastError = c.Err.Error()
		return
	}
	g.status.LastSuccess = c.PolledAt
	g.status.LastError = ""
	g.status.LastApplied = c.Result.Applied
	g.status.LastRejected = c.Result.Rejected
}
