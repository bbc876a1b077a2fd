package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-media-hub/internal/service"
	"github.com/MKhiriev/go-media-hub/models"
)

// namedRoutes registers list and create for one catalog kind. Listing is
// open to any authenticated user, creating requires ADMIN.
func namedRoutes[T models.Genre | models.Actor | models.Creator](h *Handler, svc service.NamedService[T]) func(chi.Router) {
	return func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			list, err := svc.FindAll(r.Context())
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeResponse(w, r, list, http.StatusOK)
		})

		r.With(requireRole(models.RoleAdmin)).Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req models.CatalogNameRequest
			if err := h.decodeRequest(r, &req); err != nil {
				writeError(w, r, err)
				return
			}

			entity, err := svc.Create(r.Context(), req.Name)
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeResponse(w, r, entity, http.StatusCreated)
		})
	}
}
