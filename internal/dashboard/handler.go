// AngelaMos | 2026
// handler.go

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/owner_dashboard/{ownerID}", h.OwnerDashboard)
	r.Get("/tenant_dashboard/{tenantID}", h.TenantDashboard)
}

func (h *Handler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	entries, err := h.service.OwnerView(r.Context(), ownerID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if len(entries) == 0 {
		core.Message(
			w,
			http.StatusNotFound,
			"No properties found for this owner.",
		)
		return
	}

	core.OK(w, entries)
}

func (h *Handler) TenantDashboard(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantID")

	entries, err := h.service.TenantView(r.Context(), tenantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if len(entries) == 0 {
		core.Message(
			w,
			http.StatusNotFound,
			"You haven't liked any properties yet.",
		)
		return
	}

	core.OK(w, entries)
}
