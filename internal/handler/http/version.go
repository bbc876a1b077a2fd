package http

import "net/http"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
