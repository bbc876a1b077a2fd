package http

import "net/http"

// health answers 200 when the database and the cache respond, 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	writeResponse(w, r, resp, status)
}
