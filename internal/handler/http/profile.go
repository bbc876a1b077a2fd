package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-media-hub/models"
)

// profileTarget reads the authenticated user and the {id} profile.
func profileTarget(r *http.Request) (userID, profileID uuid.UUID, err error) {
	if userID, err = currentUser(r); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if profileID, err = pathUUID(r, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return userID, profileID, nil
}

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ProfileCreateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, profile, http.StatusCreated)
}

func (h *Handler) findProfile(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.FindByID(r.Context(), userID, profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ProfileUpdateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.Update(r.Context(), userID, profileID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, profile, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProfileService.Delete(r.Context(), userID, profileID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) findLikes(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	likes, err := h.services.ProfileService.FindLikes(r.Context(), userID, profileID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, likes, http.StatusOK)
}

func (h *Handler) createLike(w http.ResponseWriter, r *http.Request) {
	userID, profileID, err := profileTarget(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.LikeRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	like, err := h.services.ProfileService.CreateLike(r.Context(), userID, profileID, req.MediaContentsID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, like, http.StatusCreated)
}

func (h *Handler) deleteLike(w http.ResponseWriter, r *http.Request) {
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

	if err = h.services.ProfileService.DeleteLike(r.Context(), userID, profileID, mediaContentsID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
