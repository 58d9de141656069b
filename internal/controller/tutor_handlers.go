package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/YairBetsalel/tutor-path-finder/internal/service"
)

type TutorHandlers struct {
	service TutorService
}

func (h *TutorHandlers) handleDirectory(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.Directory(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (h *TutorHandlers) handleGet(w http.ResponseWriter, r *http.Request) {
	tutorID, err := uuid.Parse(chi.URLParam(r, "tutorId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_tutor_id")
		return
	}

	card, err := h.service.Get(r.Context(), tutorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *TutorHandlers) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	var req service.TutorProfileInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	profile, err := h.service.UpsertProfile(r.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *TutorHandlers) handleQualifications(w http.ResponseWriter, r *http.Request) {
	subject := chi.URLParam(r, "subject")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"subject":        subject,
		"qualifications": service.QualificationsForSubject(subject),
	})
}
