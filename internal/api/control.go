package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/easycontrols-gateway/internal/gateway"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// setParameterRequest is the body of PUT /parameters/{name}.
//
// Value is normally a string in the device's text format. JSON numbers and
// booleans are accepted and passed through as their literal text.
type setParameterRequest struct {
	Value json.RawMessage `json:"value"`
}

// rawValue returns the request value as device text.
func (req setParameterRequest) rawValue() (string, bool) {
	v := bytes.TrimSpace(req.Value)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", false
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", false
		}
		return s, true
	}
	switch {
	case bytes.Equal(v, []byte("true")):
		return "1", true
	case bytes.Equal(v, []byte("false")):
		return "0", true
	}
	if _, err := strconv.ParseFloat(string(v), 64); err != nil {
		return "", false
	}
	return string(v), true
}

// cycleResponse summarises a poll cycle.
type cycleResponse struct {
	CycleID    string `json:"cycle_id"`
	Version    uint64 `json:"version"`
	DurationMS int64  `json:"duration_ms"`
	Applied    int    `json:"applied"`
	Rejected   int    `json:"rejected"`
}

func newCycleResponse(c gateway.Cycle) cycleResponse {
	return cycleResponse{
		CycleID:    c.ID,
		Version:    c.Version,
		DurationMS: c.Duration.Milliseconds(),
		Applied:    c.Result.Applied,
		Rejected:   c.Result.Rejected,
	}
}

// handlePoll forces an immediate poll of the unit.
func (s *Server) handlePoll(w http.ResponseWriter, r *http.Request) {
	c, err := s.gateway.PollNow(r.Context())
	if err != nil {
		s.logger.Warn("forced poll failed",
			"cycle_id", c.ID,
			"subject", subjectFromContext(r.Context()),
			"error", err,
		)
		writeError(w, http.StatusBadGateway, ErrCodeDevice, "poll failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cycle":  newCycleResponse(c),
		"status": s.gateway.Status(),
	})
}

// handleSetParameter writes one parameter to the unit.
func (s *Server) handleSetParameter(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || len(name) > maxPathParamLen {
		writeBadRequest(w, "invalid parameter name")
		return
	}

	var req setParameterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	raw, ok := req.rawValue()
	if !ok {
		writeBadRequest(w, "value must be a string, number or boolean")
		return
	}

	v, err := s.gateway.Set(r.Context(), name, raw)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrUnknownParameter):
			writeNotFound(w, "unknown parameter name")
		case errors.Is(err, gateway.ErrInvalidValue):
			writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		case errors.Is(err, gateway.ErrWriteFailed):
			s.logger.Warn("parameter write failed", "name", name, "error", err)
			writeError(w, http.StatusBadGateway, ErrCodeDevice, "write to device failed")
		default:
			writeInternalError(w, "failed to set parameter")
		}
		return
	}

	s.logger.Info("parameter set via API",
		"name", name,
		"value", v.Raw(),
		"subject", subjectFromContext(r.Context()),
	)

	d, _ := parameter.LookupByName(name) //nolint:errcheck // Set succeeded, so the name is registered
	writeJSON(w, http.StatusOK, fieldResponse{
		Name:  d.Name,
		Label: d.Label,
		Kind:  d.Kind,
		Value: v.Interface(),
		Raw:   v.Raw(),
	})
}
