package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-hub/models"
)

func (h *Handler) findAllMediaContents(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.MediaContentsService.FindAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, list, http.StatusOK)
}

// findMediaContents returns the contents as seen by the profile named in
// the profileId header.
func (h *Handler) findMediaContents(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	profileID, err := viewingProfile(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.MediaContentsService.FindByID(r.Context(), userID, profileID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, view, http.StatusOK)
}

func (h *Handler) createMediaContents(w http.ResponseWriter, r *http.Request) {
	var req models.MediaContentsCreateRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contents, err := h.services.MediaContentsService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, contents, http.StatusCreated)
}

func (h *Handler) updateMediaContents(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MediaContentsUpdateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contents, err := h.services.MediaContentsService.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, contents, http.StatusOK)
}

func (h *Handler) deleteMediaContents(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MediaContentsService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addCast links a genre, actor or creator chosen by the {kind} segment.
func (h *Handler) addCast(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	kind, err := castKind(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CastRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contents, err := h.services.MediaContentsService.AddCast(r.Context(), id, kind, req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, contents, http.StatusOK)
}

func (h *Handler) removeCast(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	kind, err := castKind(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	castID, err := pathUUID(r, "castID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	contents, err := h.services.MediaContentsService.RemoveCast(r.Context(), id, kind, castID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, contents, http.StatusOK)
}

func (h *Handler) findMediaSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "seriesID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.MediaContentsService.FindSeriesByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, series, http.StatusOK)
}

func (h *Handler) findMediaSeriesByContents(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.MediaContentsService.FindSeriesByContentsID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, list, http.StatusOK)
}

func (h *Handler) createMediaSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MediaSeriesCreateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.MediaContentsService.CreateSeries(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, series, http.StatusCreated)
}

func (h *Handler) updateMediaSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "seriesID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MediaSeriesUpdateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	series, err := h.services.MediaContentsService.UpdateSeries(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, series, http.StatusOK)
}

func (h *Handler) deleteMediaSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "seriesID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.MediaContentsService.DeleteSeries(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
