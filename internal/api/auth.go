package api

import (
	"net/http"
	"time"

	"github.com/nerrad567/easycontrols-gateway/internal/auth"
)

// meResponse describes the caller's token.
type meResponse struct {
	Subject     string            `json:"subject"`
	Role        auth.Role         `json:"role"`
	Permissions []auth.Permission `json:"permissions"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
}

// handleMe reports who the bearer token belongs to and what it may do, so
// clients can hide controls they are not allowed to use.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeUnauthorized(w, "bearer token is required")
		return
	}

	resp := meResponse{
		Subject:     claims.Subject,
		Role:        claims.Role,
		Permissions: auth.PermissionsForRole(claims.Role),
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.UTC()
		resp.ExpiresAt = &exp
	}
	writeJSON(w, http.StatusOK, resp)
}
