// AngelaMos | 2026
// handler.go

package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/folio-api/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/about", h.GetAbout)
	r.Get("/cv", h.GetCV)
	r.Get("/counters", h.GetCounters)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Put("/admin/about", h.UpdateAbout)
		r.Put("/admin/cv", h.UpdateCV)
		r.Put("/admin/counters/projects", h.UpdateProjectsCounter)
		r.Put("/admin/counters/experience", h.UpdateExperienceCounter)
	})
}

func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.GetAbout(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "about")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AboutResponse{Content: about.Content})
}

func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req UpdateAboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.UpdateAbout(r.Context(), req.Content); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, AboutResponse{Content: req.Content})
}

func (h *Handler) GetCV(w http.ResponseWriter, r *http.Request) {
	cv, err := h.service.GetCV(r.Context())
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "cv")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CVResponse{LinkCV: cv.LinkCV})
}

func (h *Handler) UpdateCV(w http.ResponseWriter, r *http.Request) {
	var req UpdateCVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := h.service.UpdateCV(r.Context(), req.LinkCV); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, CVResponse{LinkCV: req.LinkCV})
}

func (h *Handler) GetCounters(w http.ResponseWriter, r *http.Request) {
	counters, err := h.service.GetCounters(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, counters)
}

func (h *Handler) UpdateProjectsCounter(w http.ResponseWriter, r *http.Request) {
	h.updateCounter(w, r, h.service.SetProjectsCounter)
}

func (h *Handler) UpdateExperienceCounter(w http.ResponseWriter, r *http.Request) {
	h.updateCounter(w, r, h.service.SetExperienceCounter)
}

func (h *Handler) updateCounter(
	w http.ResponseWriter,
	r *http.Request,
	set func(ctx context.Context, number int) error,
) {
	var req UpdateCounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	if err := set(r.Context(), req.Number); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}
