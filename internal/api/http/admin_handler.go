package http

import (
	"net/http"

	"salesincentive-backend/internal/service"
)

// AdminHandler exposes audit-log and policy reads
type AdminHandler struct {
	auditService  service.AuditService
	policyService service.PolicyService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(audit service.AuditService, policies service.PolicyService) *AdminHandler {
	return &AdminHandler{
		auditService:  audit,
		policyService: policies,
	}
}

// AuditLogs handles GET /api/audit-logs
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 50)

	logs, total, err := h.auditService.ListLogs(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"logs":       logs,
		"totalCount": total,
	})
}

// ListPolicies handles GET /api/policies
func (h *AdminHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policyService.ListPolicies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}

// GetPolicy handles GET /api/policies/{id}
func (h *AdminHandler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	policy, err := h.policyService.GetPolicy(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policy)
}
