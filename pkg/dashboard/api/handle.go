package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/simple-org/pkg/dashboard"
	"github.com/tendant/simple-org/pkg/role"
	"github.com/tendant/simple-org/pkg/token"
)

// Handle contains dependencies for dashboard HTTP handlers
type Handle struct {
	aggregator *dashboard.Aggregator
}

// NewHandle creates a new dashboard handler
func NewHandle(aggregator *dashboard.Aggregator) *Handle {
	return &Handle{
		aggregator: aggregator,
	}
}

// RegisterRoutes registers role-guarded dashboard routes. The caller is
// expected to have the token verifier middleware installed already.
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.With(token.RequireRoles(role.RoleAdmin)).Get("/admin", h.GetAdmin)
	r.With(token.RequireRoles(role.RoleCEO)).Get("/ceo", h.GetCEO)
	r.With(token.RequireRoles(role.RoleManager)).Get("/manager", h.GetManager)
	r.With(token.RequireRoles(role.RoleEmployee, role.RoleManager, role.RoleAdmin, role.RoleCEO)).Get("/employee", h.GetEmployee)
}

// GetAdmin handles GET /api/dashboard/admin
func (h *Handle) GetAdmin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.aggregator.AdminStats(r.Context()))
}

// GetCEO handles GET /api/dashboard/ceo
func (h *Handle) GetCEO(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.aggregator.CEOStats(r.Context()))
}

// GetManager handles GET /api/dashboard/manager
func (h *Handle) GetManager(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.aggregator.ManagerStats(r.Context()))
}

// GetEmployee handles GET /api/dashboard/employee
func (h *Handle) GetEmployee(w http.ResponseWriter, r *http.Request) {
	userID := token.SubjectFromContext(r)
	if userID == "" {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.aggregator.EmployeeStats(r.Context(), userID))
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}
