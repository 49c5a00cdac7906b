package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
	"github.com/nerrad567/easycontrols-gateway/internal/projection"
)

// maxPathParamLen bounds name and label path parameters.
const maxPathParamLen = 64

// fieldResponse describes one record field.
type fieldResponse struct {
	Name  string         `json:"name"`
	Label string         `json:"label"`
	Kind  parameter.Kind `json:"kind"`
	Value any            `json:"value"`
	Raw   string         `json:"raw"`
}

// descriptorResponse is one entry of the registry listing.
type descriptorResponse struct {
	Name  string         `json:"name"`
	Label string         `json:"label"`
	Kind  parameter.Kind `json:"kind"`
}

// handleGetRecord returns the full canonical record.
func (s *Server) handleGetRecord(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.gateway.Record())
}

// handleGetField returns one field by canonical name.
func (s *Server) handleGetField(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || len(name) > maxPathParamLen {
		writeBadRequest(w, "invalid parameter name")
		return
	}

	d, ok := parameter.LookupByName(name)
	if !ok {
		writeNotFound(w, "unknown parameter name")
		return
	}
	v, ok := s.gateway.Record().Get(d.Name)
	writeField(w, d, v, ok)
}

// handleGetLabel returns one field by protocol label.
func (s *Server) handleGetLabel(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if label == "" || len(label) > maxPathParamLen {
		writeBadRequest(w, "invalid label")
		return
	}

	d, ok := parameter.LookupByLabel(label)
	if !ok {
		writeNotFound(w, "unknown label")
		return
	}
	v, ok := s.gateway.Record().GetByLabel(label)
	writeField(w, d, v, ok)
}

func writeField(w http.ResponseWriter, d parameter.Descriptor, v parameter.Value, ok bool) {
	if !ok {
		writeInternalError(w, "parameter has no record field")
		return
	}
	writeJSON(w, http.StatusOK, fieldResponse{
		Name:  d.Name,
		Label: d.Label,
		Kind:  d.Kind,
		Value: v.Interface(),
		Raw:   v.Raw(),
	})
}

// handleListFields returns the parameter registry in declaration order.
func (s *Server) handleListFields(w http.ResponseWriter, _ *http.Request) {
	all := parameter.All()
	fields := make([]descriptorResponse, 0, len(all))
	for _, d := range all {
		fields = append(fields, descriptorResponse{Name: d.Name, Label: d.Label, Kind: d.Kind})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"fields": fields,
		"count":  len(fields),
	})
}

// handleListViews returns the projection names.
func (s *Server) handleListViews(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"views": projection.Names(),
	})
}

// handleGetView returns a fresh snapshot of one projection.
func (s *Server) handleGetView(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	view, ok := projection.Build(name, s.gateway.Record())
	if !ok {
		writeNotFound(w, "unknown view")
		return
	}
	writeJSON(w, http.StatusOK, view)
}
