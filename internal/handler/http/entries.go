package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
)

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext, "entries requested without identity")
		return
	}

	entries, err := h.services.EntryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "listing entries failed")
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, ErrNoUserInContext, "entry creation without identity")
		return
	}

	req, err := decodeEntryRequest(w, r)
	if err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, "entry creation failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, entryID, err := identityAndEntryID(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid entry request")
		return
	}

	entry, err := h.services.EntryService.Get(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, r, err, "getting entry failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, entryID, err := identityAndEntryID(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid entry request")
		return
	}

	req, err := decodeEntryRequest(w, r)
	if err != nil {
		writeServiceError(w, r, err, "invalid JSON was passed")
		return
	}

	entry, err := h.services.EntryService.Update(r.Context(), userID, entryID, req)
	if err != nil {
		writeServiceError(w, r, err, "updating entry failed")
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, entryID, err := identityAndEntryID(r)
	if err != nil {
		writeServiceError(w, r, err, "invalid entry request")
		return
	}

	if err = h.services.EntryService.Delete(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, r, err, "deleting entry failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func identityAndEntryID(r *http.Request) (int64, int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNoUserInContext
	}

	raw := chi.URLParam(r, "id")
	entryID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || entryID <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEntryID, raw)
	}

	return userID, entryID, nil
}

func decodeEntryRequest(w http.ResponseWriter, r *http.Request) (models.EntryRequest, error) {
	var req models.EntryRequest
	if err := decodeJSON(w, r, maxEntryBodyBytes, &req); err != nil {
		return models.EntryRequest{}, err
	}
	return req, nil
}
