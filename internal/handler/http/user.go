package http

import (
	"net/http"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/models"
)

func (h *Handler) isDuplicatedEmail(w http.ResponseWriter, r *http.Request) {
	req := models.SignUpVerifyMailRequest{Email: r.URL.Query().Get("email")}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	duplicated, err := h.services.UserService.IsDuplicatedByEmail(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.DuplicateResponse{Duplicated: duplicated}, http.StatusOK)
}

func (h *Handler) signUpVerifyMail(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpVerifyMailRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.SignUpVerifyMail(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) signUpVerifyAuth(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpVerifyAuthRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.SignUpVerifyAuth(r.Context(), req.Email, req.SignUpKey); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.SignUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, user, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.UserService.SignIn(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int("profiles", len(resp.Profiles)).Msg("user signed in")
	writeResponse(w, r, resp, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshTokenRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.UserService.RefreshAccessToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, resp, http.StatusOK)
}

func (h *Handler) findPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordFindRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.FindPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) findMe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.FindByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, user, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.PasswordUpdateRequest
	if err = h.decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdatePassword(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, user, http.StatusOK)
}

func (h *Handler) findUserProfiles(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profiles, err := h.services.UserService.FindProfiles(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, profiles, http.StatusOK)
}
