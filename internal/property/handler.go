// AngelaMos | 2026
// handler.go

package property

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
	r.Get("/properties", h.ListAvailable)
	r.Get("/properties/{propertyID}", h.Get)
	r.Post("/add_property", h.Create)
}

func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.ListAvailable(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponseList(properties))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")

	p, err := h.service.Get(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "property")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPropertyResponse(p))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "agent_id or owner_user_id does not exist")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPropertyResponse(p))
}
