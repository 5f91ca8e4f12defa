// AngelaMos | 2026
// handler.go

package storage

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/folio-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.With(authenticator).Get("/admin/uploads/presign", h.Presign)
}

type PresignResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *Handler) Presign(w http.ResponseWriter, r *http.Request) {
	key, url, err := h.service.PresignUpload(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PresignResponse{Key: key, URL: url})
}
