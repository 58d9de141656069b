package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BondHandlers struct {
	service BondService
}

type bondRequestPayload struct {
	Search string `json:"search" validate:"required"`
}

func (h *BondHandlers) handleRequest(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	var req bondRequestPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	request, err := h.service.RequestBond(r.Context(), claims.UserID, req.Search)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

func (h *BondHandlers) handleParentRequests(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	requests, err := h.service.ParentRequests(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *BondHandlers) handlePending(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	pending, err := h.service.PendingRequests(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pending)
}

func (h *BondHandlers) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.service.Approve)
}

func (h *BondHandlers) handleDeny(w http.ResponseWriter, r *http.Request) {
	h.resolveRequest(w, r, h.service.Deny)
}

func (h *BondHandlers) resolveRequest(w http.ResponseWriter, r *http.Request, resolve func(ctx context.Context, childID, requestID uuid.UUID) error) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	requestID, err := uuid.Parse(chi.URLParam(r, "requestId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_id")
		return
	}

	if err := resolve(r.Context(), claims.UserID, requestID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BondHandlers) handleChildren(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing_token")
		return
	}

	children, err := h.service.BondedChildren(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, children)
}
