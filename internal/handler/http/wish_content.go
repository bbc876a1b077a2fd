package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-hub/models"
)

func (h *Handler) findWishes(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	wishes, err := h.services.WishContentService.FindByProfileID(r.Context(), userID, profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, wishes, http.StatusOK)
}

func (h *Handler) createWish(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.WishContentRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	wish, err := h.services.WishContentService.Create(r.Context(), userID, profileID, req.MediaContentsID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, wish, http.StatusCreated)
}

func (h *Handler) deleteWish(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	mediaContentsID, err := pathUUID(r, "mediaContentsID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WishContentService.Delete(r.Context(), userID, profileID, mediaContentsID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
