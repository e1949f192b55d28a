// AngelaMos | 2026
// handler.go

package like

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/rentfolio/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/like_property", h.Like)
	r.Get("/get_likes/{propertyID}", h.GetLikes)
}

func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	_, err := h.service.Like(r.Context(), req.PropertyID, req.TenantUserID)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "You have already liked this property")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "property_id or tenant_user_id does not exist")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, LikeResponse{Message: "Property liked successfully"})
}

func (h *Handler) GetLikes(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	likers, err := h.service.Likers(r.Context(), propertyID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if len(likers) == 0 {
		core.Message(
			w,
			http.StatusNotFound,
			"No one has liked this property yet.",
		)
		return
	}

	core.OK(w, LikersResponse{
		TotalLikes:        len(likers),
		InterestedTenants: likers,
	})
}
